package licenses

import "time"

// Metrics son los contadores derivados que muestra el dashboard.
type Metrics struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	Suspended    int `json:"suspended"`
	Pending      int `json:"pending"`
	ExpiringSoon int `json:"expiring_soon"`
}

// Summarize recorre las licencias una vez. Estados desconocidos solo suman a Total.
func Summarize(items []License, now time.Time, windowDays int) Metrics {
	m := Metrics{Total: len(items)}
	for _, l := range items {
		switch l.Status {
		case StatusActive:
			m.Active++
		case StatusExpired:
			m.Expired++
		case StatusSuspended:
			m.Suspended++
		case StatusPending:
			m.Pending++
		}
		if l.ExpiringSoon(now, windowDays) {
			m.ExpiringSoon++
		}
	}
	return m
}
