package activity

import (
	"context"
	"errors"
)

var ErrAlreadyExists = errors.New("activity already exists")

type Repository interface {
	Append(ctx context.Context, a Activity) error
	// List devuelve el feed en el orden en que fue cargado; no ordena.
	List(ctx context.Context) ([]Activity, error)
}
