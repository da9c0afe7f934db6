package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// ParseDecimalPrefix читает самый длинный десятичный префикс строки:
// пробелы в начале, знак, цифры, дробная часть, экспонента или Infinity.
// Остаток строки игнорируется. Без цифр в префиксе - NaN.
// Шестнадцатеричная запись и разделители "_" не поддерживаются:
// "0x10" даёт 0, "1_0" даёт 1.
func ParseDecimalPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	if strings.HasPrefix(s[i:], infinityLiteral) {
		return math.Inf(int(sign))
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			end = j
		}
	}

	// Префикс синтаксически корректен, ошибка возможна только ErrRange (±Inf)
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
