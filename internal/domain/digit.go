package domain

import "strconv"

// Digit is one of the nine values that can fill a cell.
type Digit uint8

// Digits lists all nine digits in the fixed order the solver assigns them.
func Digits() [9]Digit {
	return [9]Digit{1, 2, 3, 4, 5, 6, 7, 8, 9}
}

// ParseDigit interprets a puzzle character as a digit.
func ParseDigit(ch byte) (Digit, bool) {
	if ch < '1' || ch > '9' {
		return 0, false
	}
	return Digit(ch - '0'), true
}

func (d Digit) String() string { return strconv.Itoa(int(d)) }
