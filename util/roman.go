package util

import (
	"strings"

	"github.com/pkg/errors"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"}, {100, "C"}, {90, "XC"},
	{50, "L"}, {40, "XL"}, {10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts 1 through 3999 to upper case Roman numerals.
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", errors.Errorf("can only convert integers between 1 and 3999, got %d", n)
	}
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String(), nil
}
