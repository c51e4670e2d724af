package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutHora     = "15:04"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseHora valida HH:MM (hora de salida de un horario).
func ParseHora(s string) (time.Time, error) {
	return time.Parse(layoutHora, strings.TrimSpace(s))
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// DiaSemanaActivo evalúa la máscara lunes-domingo de un horario
// ("1111100") para la fecha dada.
func DiaSemanaActivo(mascara string, fecha time.Time) bool {
	if len(mascara) != 7 {
		return false
	}
	// time.Weekday: domingo=0; la máscara arranca en lunes.
	idx := (int(fecha.Weekday()) + 6) % 7
	return mascara[idx] == '1'
}
