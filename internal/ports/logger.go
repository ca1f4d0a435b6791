package ports

import "context"

// Logger — узкий контракт логгера для внутренних слоёв; контекст передаётся
// ради request_id/trace в записях.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
