package licenses

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("license not found")
	ErrAlreadyExists = errors.New("license already exists")
)

type Repository interface {
	Create(ctx context.Context, l License) error
	GetByID(ctx context.Context, id string) (License, error)
	// List respeta el orden de alta (id asc en postgres, orden de inserción en memoria).
	List(ctx context.Context) ([]License, error)
}
