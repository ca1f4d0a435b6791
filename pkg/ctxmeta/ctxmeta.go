// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace/span).
// Общий нижний слой: на него опираются и HTTP-middleware, и логгер,
// при этом сами они друг о друге не знают.
package ctxmeta

import "context"

// ctxKey — собственный тип ключа: значения по строковым ключам
// других пакетов сюда не попадают.
type ctxKey string

// KeyRequestID — ключ, под которым хранится идентификатор запроса.
const KeyRequestID ctxKey = "request_id"

// WithRequestID — кладёт request_id в контекст; пустой id не сохраняем.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — возвращает request_id; пустое сохранённое значение
// считается отсутствующим.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(KeyRequestID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
