package sharedstate

import (
	"encoding/json"
	"errors"
	"net/http"

	"license-management/internal/ports/sharedstore"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/store", func(sr chi.Router) {
		sr.Get("/counter", getCounterHandler(svc))
		sr.Post("/counter/{action}", counterActionHandler(svc))

		sr.Get("/users", getUsersHandler(svc))
		sr.Post("/users/license-officers", addLicenseOfficerHandler(svc))

		// Endpoint crudo con el shape {type, payload} del host.
		sr.Post("/dispatch", dispatchHandler(svc))
	})
}

type addOfficerResponse struct {
	User  sharedstore.User       `json:"user"`
	Users sharedstore.UsersState `json:"users"`
}

// getCounterHandler godoc
// @Summary  Valor actual del contador compartido
// @Tags     store
// @Produce  json
// @Success  200 {object} sharedstore.CounterState
// @Router   /store/counter [get]
func getCounterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Counter(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// counterActionHandler godoc
// @Summary  increment, decrement o reset del contador compartido
// @Tags     store
// @Produce  json
// @Param    action path string true "increment | decrement | reset"
// @Success  200 {object} sharedstore.CounterState
// @Failure  404 {string} string "unknown action"
// @Router   /store/counter/{action} [post]
func counterActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			c   sharedstore.CounterState
			err error
		)
		switch chi.URLParam(r, "action") {
		case "increment":
			c, err = svc.Increment(r.Context())
		case "decrement":
			c, err = svc.Decrement(r.Context())
		case "reset":
			c, err = svc.Reset(r.Context())
		default:
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// getUsersHandler godoc
// @Summary  Total de usuarios del store compartido
// @Tags     store
// @Produce  json
// @Success  200 {object} sharedstore.UsersState
// @Router   /store/users [get]
func getUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Users(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// addLicenseOfficerHandler godoc
// @Summary  Agrega un "License Officer" al store compartido
// @Tags     store
// @Produce  json
// @Success  201 {object} addOfficerResponse
// @Router   /store/users/license-officers [post]
func addLicenseOfficerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, st, err := svc.AddLicenseOfficer(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, addOfficerResponse{User: u, Users: st})
	}
}

// dispatchHandler godoc
// @Summary  Aplica una acción {type, payload} al store compartido
// @Tags     store
// @Accept   json
// @Param    action body sharedstore.Action true "acción"
// @Success  204
// @Failure  400 {string} string "invalid action"
// @Router   /store/dispatch [post]
func dispatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a sharedstore.Action
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := svc.Dispatch(r.Context(), a); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sharedstore.ErrUnknownAction), errors.Is(err, sharedstore.ErrInvalidAction), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sharedstore.ErrUnavailable):
		http.Error(w, "shared store unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
