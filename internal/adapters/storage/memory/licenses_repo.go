package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"license-management/internal/domain/licenses"
)

type licenseRepo struct {
	mu    sync.RWMutex
	order    []string
	byID     map[string]licenses.License
	byNumber map[string]string
}

func NewLicenseRepo() licenses.Repository {
	return &licenseRepo{
		byID:     make(map[string]licenses.License),
		byNumber: make(map[string]string),
	}
}

func (r *licenseRepo) Create(ctx context.Context, l licenses.License) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("license id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return licenses.ErrAlreadyExists
	}
	// license_number es único, igual que en postgres
	if _, taken := r.byNumber[l.LicenseNumber]; taken {
		return licenses.ErrAlreadyExists
	}
	r.byID[l.ID] = l
	r.byNumber[l.LicenseNumber] = l.ID
	r.order = append(r.order, l.ID)
	return nil
}

func (r *licenseRepo) GetByID(ctx context.Context, id string) (licenses.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return licenses.License{}, licenses.ErrNotFound
	}
	return l, nil
}

func (r *licenseRepo) List(ctx context.Context) ([]licenses.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]licenses.License, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
