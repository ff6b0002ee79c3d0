package activity

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
	repo Repository
	now  func() time.Time
}

type Option func(*Service)

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
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FeedItem es una entrada del feed ya formateada.
type FeedItem struct {
	Activity
	Label string
	Icon  string
}

func (s *Service) Append(ctx context.Context, a Activity) (Activity, error) {
	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" || a.Timestamp.IsZero() || !a.Type.Valid() {
		return Activity{}, ErrInvalidInput
	}
	a.Description = strings.TrimSpace(a.Description)

	if err := s.repo.Append(ctx, a); err != nil {
		return Activity{}, fmt.Errorf("append activity %s: %w", a.ID, err)
	}
	return a, nil
}

// Feed formatea cada actividad con un único "now"; el orden es el del repo.
func (s *Service) Feed(ctx context.Context) ([]FeedItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	now := s.now()
	out := make([]FeedItem, 0, len(items))
	for _, a := range items {
		out = append(out, FeedItem{
			Activity: a,
			Label:    FormatRelative(a.Timestamp, now),
			Icon:     a.Type.Icon(),
		})
	}
	return out, nil
}
