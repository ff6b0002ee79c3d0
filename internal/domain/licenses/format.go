package licenses

import "strings"

// EmptyValue se muestra cuando falta un dato.
const EmptyValue = "—"

// FormatDate muestra fechas como "Jan 15, 2024".
// Si no se puede parsear, devuelve el valor original en vez de fallar.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return EmptyValue
	}
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}
