package postgres

import (
	"context"
	"errors"
	"fmt"

	"license-management/internal/ports/sharedstore"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const counterRowID = 1

// SharedStore persiste el contador y los usuarios compartidos.
// Cada acción es un único statement, así que postgres la aplica de forma atómica.
// Errores de la base se reportan como sharedstore.ErrUnavailable.
type SharedStore struct {
	q Querier
}

func NewSharedStore(q Querier) *SharedStore {
	return &SharedStore{q: q}
}

func (s *SharedStore) Counter(ctx context.Context) (sharedstore.CounterState, error) {
	query, args, err := builder().
		Select("value").
		From("shared_counter").
		Where(sq.Eq{"id": counterRowID}).
		ToSql()
	if err != nil {
		return sharedstore.CounterState{}, fmt.Errorf("build select counter: %w", err)
	}

	var v int64
	if err := s.q.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sharedstore.CounterState{Value: 0}, nil
		}
		return sharedstore.CounterState{}, fmt.Errorf("%w: select counter: %v", sharedstore.ErrUnavailable, err)
	}
	return sharedstore.CounterState{Value: int(v)}, nil
}

func (s *SharedStore) Users(ctx context.Context) (sharedstore.UsersState, error) {
	query, args, err := builder().
		Select("count(*)").
		From("shared_users").
		ToSql()
	if err != nil {
		return sharedstore.UsersState{}, fmt.Errorf("build count users: %w", err)
	}

	var n int64
	if err := s.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return sharedstore.UsersState{}, fmt.Errorf("%w: count users: %v", sharedstore.ErrUnavailable, err)
	}
	return sharedstore.UsersState{TotalCount: int(n)}, nil
}

func (s *SharedStore) Dispatch(ctx context.Context, a sharedstore.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	var stmt sq.Sqlizer
	switch a.Type {
	case sharedstore.ActionIncrement:
		stmt = s.updateCounter(sq.Expr("value + 1"))
	case sharedstore.ActionDecrement:
		stmt = s.updateCounter(sq.Expr("value - 1"))
	case sharedstore.ActionReset:
		stmt = s.updateCounter(0)
	case sharedstore.ActionAddUser:
		u := a.Payload
		stmt = builder().
			Insert("shared_users").
			Columns("id", "name", "email", "role").
			Values(u.ID, u.Name, u.Email, u.Role).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role")
	default:
		return sharedstore.ErrUnknownAction
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build %s: %w", a.Type, err)
	}
	if _, err := s.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: exec %s: %v", sharedstore.ErrUnavailable, a.Type, err)
	}
	return nil
}

func (s *SharedStore) updateCounter(value any) sq.UpdateBuilder {
	return builder().
		Update("shared_counter").
		Set("value", value).
		Where(sq.Eq{"id": counterRowID})
}
