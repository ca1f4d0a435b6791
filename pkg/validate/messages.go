package validate

// Тексты ошибок — контракт API: клиенты ветвятся по литералам,
// менять формулировки нельзя.
const (
	MsgBrandRequired        = "brand is required"
	MsgModelRequired        = "model is required"
	MsgYearRequired         = "year is required"
	MsgPlateRequired        = "plate is required"
	MsgYearOutOfRange       = "year must be between 2016 and 2026"
	MsgPlateBadFormat       = "plate must be in the correct format ABC-1C34"
	MsgCarAlreadyRegistered = "car already registered"
	MsgModelMustBeInformed  = "model must also be informed"
	MsgItemsRequired        = "items is required"
	MsgItemsMaxFive         = "items must be a maximum of 5"
	MsgItemsRepeated        = "items cannot be repeated"
)

// HasConflict — содержит ли список ошибку дубликата номера.
// Такой список класса 409, любой другой непустой — 400.
func HasConflict(msgs []string) bool {
	for _, m := range msgs {
		if m == MsgCarAlreadyRegistered {
			return true
		}
	}
	return false
}
