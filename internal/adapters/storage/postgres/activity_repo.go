package postgres

import (
	"context"
	"fmt"

	"license-management/internal/domain/activity"
)

type ActivityRepo struct {
	q Querier
}

func NewActivityRepo(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

func (r *ActivityRepo) Append(ctx context.Context, a activity.Activity) error {
	query, args, err := builder().
		Insert("license_activities").
		Columns("id", "description", "occurred_at", "type").
		Values(a.ID, a.Description, a.Timestamp, string(a.Type)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return activity.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// List ordena por seq (orden de alta), no por fecha: el feed conserva el orden de carga.
func (r *ActivityRepo) List(ctx context.Context) ([]activity.Activity, error) {
	query, args, err := builder().
		Select("id", "description", "occurred_at", "type").
		From("license_activities").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.Activity, 0)
	for rows.Next() {
		var (
			a   activity.Activity
			typ string
		)
		if err := rows.Scan(&a.ID, &a.Description, &a.Timestamp, &typ); err != nil {
			return nil, err
		}
		a.Type = activity.Type(typ)
		out = append(out, a)
	}
	return out, rows.Err()
}
