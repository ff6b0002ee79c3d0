package licenses

import (
	"strings"
	"time"
)

// DefaultExpiringWindowDays es la ventana usada si la config no define otra.
const DefaultExpiringWindowDays = 30

const dateLayout = "2006-01-02"

// parseDate acepta YYYY-MM-DD o RFC3339 y devuelve la fecha (medianoche UTC).
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return truncateDay(t), true
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil devuelve los días calendario entre la fecha de now (en su propia zona)
// y la fecha de vencimiento. Negativo si ya venció. ok=false si la fecha no se puede parsear.
func DaysUntil(expiryDate string, now time.Time) (days int, ok bool) {
	exp, ok := parseDate(expiryDate)
	if !ok {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := exp.Sub(today)
	return int(diff / (24 * time.Hour)), true
}

// IsExpiringSoon es true si el vencimiento cae dentro de [0, windowDays] días desde now.
// Fechas inválidas fallan cerrado (false) para no romper el dashboard.
func IsExpiringSoon(expiryDate string, now time.Time, windowDays int) bool {
	if windowDays < 0 {
		return false
	}
	days, ok := DaysUntil(expiryDate, now)
	if !ok {
		return false
	}
	return days >= 0 && days <= windowDays
}

// ExpiringSoon aplica IsExpiringSoon, excepto para licencias ya marcadas como Expired.
func (l License) ExpiringSoon(now time.Time, windowDays int) bool {
	if l.Status == StatusExpired {
		return false
	}
	return IsExpiringSoon(l.ExpiryDate, now, windowDays)
}
