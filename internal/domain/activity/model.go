package activity

import "time"

// Type es el tipo de evento en el ciclo de vida de una licencia.
// @Enum issued, renewed, suspended, expired
type Type string

const (
	TypeIssued    Type = "issued"
	TypeRenewed   Type = "renewed"
	TypeSuspended Type = "suspended"
	TypeExpired   Type = "expired"
)

func AllTypes() []Type {
	return []Type{TypeIssued, TypeRenewed, TypeSuspended, TypeExpired}
}

func (t Type) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Icon replica los íconos del feed. Cualquier otro tipo cae en ❌.
func (t Type) Icon() string {
	switch t {
	case TypeIssued:
		return "📜"
	case TypeRenewed:
		return "🔄"
	case TypeSuspended:
		return "⏸️"
	default:
		return "❌"
	}
}

type Activity struct {
	ID          string
	Description string
	Timestamp   time.Time
	Type        Type
}
