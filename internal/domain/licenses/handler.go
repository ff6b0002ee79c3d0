package licenses

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/licenses", func(lr chi.Router) {
		lr.Get("/", listLicensesHandler(svc))
		lr.Get("/metrics", metricsHandler(svc))
		lr.Get("/{licenseID}", getLicenseHandler(svc))
	})
}

type Response struct {
	ID              string      `json:"id"`
	LicenseNumber   string      `json:"license_number"`
	CompanyName     string      `json:"company_name"`
	LicenseType     string      `json:"license_type"`
	IssueDate       string      `json:"issue_date"`
	ExpiryDate      string      `json:"expiry_date"`
	IssueDateLabel  string      `json:"issue_date_label"`
	ExpiryDateLabel string      `json:"expiry_date_label"`
	Status          Status      `json:"status"`
	IssuedBy        string      `json:"issued_by"`
	ExpiringSoon    bool        `json:"expiring_soon"`
	Style           StatusStyle `json:"style"`
}

type listLicensesResponse struct {
	Items      []Response `json:"items"`
	Metrics    Metrics    `json:"metrics"`
	WindowDays int        `json:"window_days"`
}

// listLicensesHandler godoc
// @Summary  Lista licencias con fechas formateadas y estilo de estado
// @Tags     licenses
// @Produce  json
// @Success  200 {object} listLicensesResponse
// @Router   /licenses [get]
func listLicensesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, m, err := svc.Rows(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Response, 0, len(rows))
		for _, row := range rows {
			out = append(out, ToResponse(row))
		}

		writeJSON(w, http.StatusOK, listLicensesResponse{
			Items:      out,
			Metrics:    m,
			WindowDays: svc.WindowDays(),
		})
	}
}

// metricsHandler godoc
// @Summary  Contadores derivados (active, expiring soon, pending, ...)
// @Tags     licenses
// @Produce  json
// @Success  200 {object} Metrics
// @Router   /licenses/metrics [get]
func metricsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Metrics(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

// getLicenseHandler godoc
// @Summary  Detalle de una licencia
// @Tags     licenses
// @Produce  json
// @Param    licenseID path string true "License ID"
// @Success  200 {object} Response
// @Failure  404 {string} string "license not found"
// @Router   /licenses/{licenseID} [get]
func getLicenseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "licenseID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "license not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(svc.RowFor(l)))
	}
}

// ToResponse se exporta para que el dashboard reutilice el mismo shape JSON.
func ToResponse(row Row) Response {
	return Response{
		ID:              row.ID,
		LicenseNumber:   row.LicenseNumber,
		CompanyName:     row.CompanyName,
		LicenseType:     row.LicenseType,
		IssueDate:       row.IssueDate,
		ExpiryDate:      row.ExpiryDate,
		IssueDateLabel:  row.IssueDateLabel,
		ExpiryDateLabel: row.ExpiryDateLabel,
		Status:          row.Status,
		IssuedBy:        row.IssuedBy,
		ExpiringSoon:    row.ExpiringSoon,
		Style:           row.Style,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
