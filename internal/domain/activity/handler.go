package activity

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/activity", listFeedHandler(svc))
}

type FeedItemResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Type        Type      `json:"type"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
}

// listFeedHandler godoc
// @Summary  Feed de actividad reciente con tiempo relativo
// @Tags     activity
// @Produce  json
// @Success  200 {array} FeedItemResponse
// @Router   /activity [get]
func listFeedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Feed(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]FeedItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, ToResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ToResponse(it FeedItem) FeedItemResponse {
	return FeedItemResponse{
		ID:          it.ID,
		Description: it.Description,
		Timestamp:   it.Timestamp,
		Type:        it.Type,
		Label:       it.Label,
		Icon:        it.Icon,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
