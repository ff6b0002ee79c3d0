package licenses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo       Repository
	now        func() time.Time
	windowDays int
}

type Option func(*Service)

// WithWindowDays cambia la ventana de "expiring soon" (default 30 días).
func WithWindowDays(days int) Option {
	return func(s *Service) {
		if days >= 0 {
			s.windowDays = days
		}
	}
}

// WithClock inyecta el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		now:        time.Now,
		windowDays: DefaultExpiringWindowDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Row es una licencia lista para la tabla del dashboard.
type Row struct {
	License
	IssueDateLabel  string
	ExpiryDateLabel string
	ExpiringSoon    bool
	Style           StatusStyle
}

func (s *Service) WindowDays() int {
	return s.windowDays
}

func (s *Service) Create(ctx context.Context, l License) (License, error) {
	l.ID = strings.TrimSpace(l.ID)
	l.LicenseNumber = strings.TrimSpace(l.LicenseNumber)
	if l.ID == "" || l.LicenseNumber == "" {
		return License{}, ErrInvalidInput
	}
	st, ok := ParseStatus(string(l.Status))
	if !ok {
		return License{}, ErrInvalidInput
	}
	l.Status = st

	if err := s.repo.Create(ctx, l); err != nil {
		return License{}, fmt.Errorf("create license %s: %w", l.ID, err)
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (License, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return License{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]License, error) {
	return s.repo.List(ctx)
}

// Metrics calcula los contadores con el "now" actual del servicio.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("list licenses: %w", err)
	}
	return Summarize(items, s.now(), s.windowDays), nil
}

// Rows arma la tabla y las métricas con un único "now" para que sean consistentes.
func (s *Service) Rows(ctx context.Context) ([]Row, Metrics, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("list licenses: %w", err)
	}

	now := s.now()
	out := make([]Row, 0, len(items))
	for _, l := range items {
		out = append(out, s.toRow(l, now))
	}
	return out, Summarize(items, now, s.windowDays), nil
}

// RowFor arma la fila de una sola licencia.
func (s *Service) RowFor(l License) Row {
	return s.toRow(l, s.now())
}

func (s *Service) toRow(l License, now time.Time) Row {
	return Row{
		License:         l,
		IssueDateLabel:  FormatDate(l.IssueDate),
		ExpiryDateLabel: FormatDate(l.ExpiryDate),
		ExpiringSoon:    l.ExpiringSoon(now, s.windowDays),
		Style:           StyleFor(l.Status),
	}
}
