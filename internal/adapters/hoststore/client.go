package hoststore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"license-management/internal/platform/httpclient"
	"license-management/internal/ports/sharedstore"
)

var (
	ErrNotConfigured = errors.New("host store not configured")
)

// Rutas del store en la app host (shell del micro-frontend).
const (
	counterPath  = "/store/counter"
	usersPath    = "/store/users"
	dispatchPath = "/store/dispatch"

	remoteModuleHeader = "X-Remote-Module"
	remoteModuleName   = "licenses"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Store habla con el store compartido que expone el host por HTTP.
// El host es el único writer; acá solo se leen selectores y se despachan acciones.
type Store struct {
	http *httpclient.Client
}

func New(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	c.Headers[remoteModuleHeader] = remoteModuleName
	return &Store{http: c}, nil
}

// NewWithClient permite inyectar un httpclient (p.ej. con Transport de tests).
func NewWithClient(c *httpclient.Client) *Store {
	return &Store{http: c}
}

func (s *Store) Counter(ctx context.Context) (sharedstore.CounterState, error) {
	var out sharedstore.CounterState
	if err := s.http.DoJSON(ctx, http.MethodGet, counterPath, nil, nil, &out); err != nil {
		return sharedstore.CounterState{}, fmt.Errorf("%w: %v", sharedstore.ErrUnavailable, err)
	}
	return out, nil
}

func (s *Store) Users(ctx context.Context) (sharedstore.UsersState, error) {
	var out sharedstore.UsersState
	if err := s.http.DoJSON(ctx, http.MethodGet, usersPath, nil, nil, &out); err != nil {
		return sharedstore.UsersState{}, fmt.Errorf("%w: %v", sharedstore.ErrUnavailable, err)
	}
	return out, nil
}

func (s *Store) Dispatch(ctx context.Context, a sharedstore.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.http.DoJSON(ctx, http.MethodPost, dispatchPath, nil, a, nil); err != nil {
		return mapDispatchError(err)
	}
	return nil
}

// mapDispatchError: 4xx del host => acción rechazada; red o 5xx => store no disponible.
func mapDispatchError(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) && he.StatusCode >= 400 && he.StatusCode < 500 {
		return fmt.Errorf("%w: %s", sharedstore.ErrInvalidAction, he.Error())
	}
	return fmt.Errorf("%w: %v", sharedstore.ErrUnavailable, err)
}
