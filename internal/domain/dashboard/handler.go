package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Mensajes que la página muestra después de un redirect (?notice=...).
var notices = map[string]string{
	"store-unavailable": "Shared store is unavailable; the action was not applied.",
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", pageHandler(svc))
	r.Get("/dashboard", viewHandler(svc))
	r.Post("/ui/{action}", actionHandler(svc))
}

type viewResponse struct {
	Header     Header                      `json:"header"`
	Stats      []StatCard                  `json:"stats"`
	Counter    SharedCounter               `json:"counter"`
	Users      SharedUsers                 `json:"users"`
	Metrics    licenses.Metrics            `json:"metrics"`
	WindowDays int                         `json:"window_days"`
	Licenses   []licenses.Response         `json:"licenses"`
	Activity   []activity.FeedItemResponse `json:"activity"`
}

// viewHandler godoc
// @Summary  Vista completa del módulo (stats, tabla, feed, store compartido)
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} viewResponse
// @Router   /dashboard [get]
func viewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Build(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(v))
	}
}

func pageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Build(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		v.Notice = notices[r.URL.Query().Get("notice")]

		// render a buffer para no mandar una página a medias si el template falla
		var buf bytes.Buffer
		if err := pageTmpl.Execute(&buf, v); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func actionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Apply(r.Context(), Action(chi.URLParam(r, "action")))
		if errors.Is(err, ErrUnknownAction) {
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}

		target := "/"
		if err != nil {
			target += "?" + url.Values{"notice": {"store-unavailable"}}.Encode()
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func toViewResponse(v View) viewResponse {
	rows := make([]licenses.Response, 0, len(v.Licenses))
	for _, row := range v.Licenses {
		rows = append(rows, licenses.ToResponse(row))
	}
	feed := make([]activity.FeedItemResponse, 0, len(v.Activity))
	for _, it := range v.Activity {
		feed = append(feed, activity.ToResponse(it))
	}
	return viewResponse{
		Header:     v.Header,
		Stats:      v.Stats,
		Counter:    v.Counter,
		Users:      v.Users,
		Metrics:    v.Metrics,
		WindowDays: v.WindowDays,
		Licenses:   rows,
		Activity:   feed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
