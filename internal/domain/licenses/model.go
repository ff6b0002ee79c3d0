package licenses

import "strings"

// Status define el estado de una licencia.
// @Enum Active, Expired, Suspended, Pending
type Status string

const (
	StatusActive    Status = "Active"
	StatusExpired   Status = "Expired"
	StatusSuspended Status = "Suspended"
	StatusPending   Status = "Pending"
)

// AllStatuses devuelve los estados conocidos en orden de presentación.
func AllStatuses() []Status {
	return []Status{StatusActive, StatusExpired, StatusSuspended, StatusPending}
}

// ParseStatus acepta el nombre del estado sin importar mayúsculas.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range AllStatuses() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return Status(s), false
}

// License es un permiso emitido (importación/exportación, depósito, etc).
// IssueDate y ExpiryDate se guardan como YYYY-MM-DD; se asume IssueDate <= ExpiryDate.
type License struct {
	ID            string
	LicenseNumber string
	CompanyName   string
	LicenseType   string
	IssueDate     string
	ExpiryDate    string
	Status        Status
	IssuedBy      string
}
