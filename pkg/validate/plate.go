package validate

// PlateFormat — проверка госномера на соответствие формату ABC-1C34:
// ровно 8 символов, три заглавные латинские буквы, дефис, затем цифра,
// цифра или буква A-J, и две цифры.
func PlateFormat(plate string) bool {
	if len(plate) != 8 {
		return false
	}
	if plate[3] != '-' {
		return false
	}
	for i := 0; i < 3; i++ {
		if plate[i] < 'A' || plate[i] > 'Z' {
			return false
		}
	}
	if !isDigit(plate[4]) {
		return false
	}
	if !isDigit(plate[5]) && (plate[5] < 'A' || plate[5] > 'J') {
		return false
	}
	return isDigit(plate[6]) && isDigit(plate[7])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
