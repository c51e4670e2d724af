package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGuaranies renders an integer amount with thousand separators,
// e.g. 1500000 -> "Gs. 1.500.000". El guaraní no usa decimales.
func FormatGuaranies(monto int64) string {
	sign := ""
	if monto < 0 {
		sign = "-"
		monto = -monto
	}
	return fmt.Sprintf("%sGs. %s", sign, formatThousand(monto))
}

// ParseGuaranies parses "Gs. 1.500.000" or "1500000" into an integer
// amount.
func ParseGuaranies(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "gs.")
	s = strings.TrimPrefix(s, "gs")
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("monto invalido")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
