package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"license-management/internal/domain/activity"
)

type activityRepo struct {
	mu    sync.RWMutex
	items []activity.Activity
	seen  map[string]struct{}
}

func NewActivityRepo() activity.Repository {
	return &activityRepo{
		seen: make(map[string]struct{}),
	}
}

func (r *activityRepo) Append(ctx context.Context, a activity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("activity id required")
	}
	if _, ok := r.seen[a.ID]; ok {
		return activity.ErrAlreadyExists
	}
	r.seen[a.ID] = struct{}{}
	r.items = append(r.items, a)
	return nil
}

// List devuelve una copia en orden de inserción (sin ordenar por fecha).
func (r *activityRepo) List(ctx context.Context) ([]activity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Activity, len(r.items))
	copy(out, r.items)
	return out, nil
}
