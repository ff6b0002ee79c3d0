package sharedstate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"license-management/internal/ports/ids"
	"license-management/internal/ports/sharedstore"
)

const (
	OfficerRole        = "License Officer"
	officerEmailDomain = "licenses.gov"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service lee y despacha acciones al store compartido del host. No es dueño del estado.
type Service struct {
	store sharedstore.Store
	ids   ids.Generator
}

func NewService(store sharedstore.Store, gen ids.Generator) *Service {
	return &Service{
		store: store,
		ids:   gen,
	}
}

type Snapshot struct {
	Counter sharedstore.CounterState
	Users   sharedstore.UsersState
}

func (s *Service) Counter(ctx context.Context) (sharedstore.CounterState, error) {
	return s.store.Counter(ctx)
}

func (s *Service) Users(ctx context.Context) (sharedstore.UsersState, error) {
	return s.store.Users(ctx)
}

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	c, err := s.store.Counter(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("select counter: %w", err)
	}
	u, err := s.store.Users(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("select users: %w", err)
	}
	return Snapshot{Counter: c, Users: u}, nil
}

func (s *Service) Increment(ctx context.Context) (sharedstore.CounterState, error) {
	return s.dispatchCounter(ctx, sharedstore.Increment())
}

func (s *Service) Decrement(ctx context.Context) (sharedstore.CounterState, error) {
	return s.dispatchCounter(ctx, sharedstore.Decrement())
}

func (s *Service) Reset(ctx context.Context) (sharedstore.CounterState, error) {
	return s.dispatchCounter(ctx, sharedstore.Reset())
}

// Dispatch reenvía una acción cruda (endpoint estilo host).
func (s *Service) Dispatch(ctx context.Context, a sharedstore.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.store.Dispatch(ctx, a)
}

// NewLicenseOfficer arma el payload del usuario; no toca el store.
func NewLicenseOfficer(id string) sharedstore.User {
	return sharedstore.User{
		ID:    id,
		Name:  "License Officer " + id,
		Email: "officer" + id + "@" + officerEmailDomain,
		Role:  OfficerRole,
	}
}

// AddLicenseOfficer crea el payload con un id inyectado y delega el alta al store.
func (s *Service) AddLicenseOfficer(ctx context.Context) (sharedstore.User, sharedstore.UsersState, error) {
	id := strings.TrimSpace(s.ids.NewID())
	if id == "" {
		return sharedstore.User{}, sharedstore.UsersState{}, ErrInvalidInput
	}

	u := NewLicenseOfficer(id)
	if err := s.store.Dispatch(ctx, sharedstore.AddUser(u)); err != nil {
		return sharedstore.User{}, sharedstore.UsersState{}, fmt.Errorf("dispatch add user: %w", err)
	}

	st, err := s.store.Users(ctx)
	if err != nil {
		return u, sharedstore.UsersState{}, fmt.Errorf("select users: %w", err)
	}
	return u, st, nil
}

func (s *Service) dispatchCounter(ctx context.Context, a sharedstore.Action) (sharedstore.CounterState, error) {
	if err := s.store.Dispatch(ctx, a); err != nil {
		return sharedstore.CounterState{}, fmt.Errorf("dispatch %s: %w", a.Type, err)
	}
	return s.store.Counter(ctx)
}
