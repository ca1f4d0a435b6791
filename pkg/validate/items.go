package validate

// MaxItems — максимум аксессуаров у одного автомобиля.
const MaxItems = 5

// Items — правила полного набора аксессуаров (replace, не merge):
// список обязателен и непуст, не более MaxItems, без точных повторов имён.
// Пустой список не означает «очистить» — это отдельная ошибка MsgItemsRequired.
func Items(names []string) []string {
	var msgs []string

	if len(names) == 0 {
		msgs = append(msgs, MsgItemsRequired)
		return msgs
	}

	if len(names) > MaxItems {
		msgs = append(msgs, MsgItemsMaxFive)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			msgs = append(msgs, MsgItemsRepeated)
			break
		}
		seen[name] = struct{}{}
	}

	return msgs
}
