package activity

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const day = 24 * time.Hour

// EmptyLabel se usa cuando el timestamp no es válido.
const EmptyLabel = "—"

// Las unidades se truncan (DivBy hace división entera), nunca se redondean.
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * day, Format: "1 day %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d days %s", DivBy: day},
}

// FormatRelative arma "3 hours ago" a partir de now - ts.
// Timestamps en el futuro se muestran como "just now".
func FormatRelative(ts, now time.Time) string {
	if ts.IsZero() {
		return EmptyLabel
	}
	if ts.After(now) {
		ts = now
	}
	return humanize.CustomRelTime(ts, now, "ago", "from now", relativeMagnitudes)
}
