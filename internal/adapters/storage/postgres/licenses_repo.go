package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"license-management/internal/domain/licenses"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var licenseColumns = []string{
	"id", "license_number", "company_name", "license_type",
	"issue_date", "expiry_date", "status", "issued_by",
}

type LicensesRepo struct {
	q Querier
}

func NewLicensesRepo(q Querier) *LicensesRepo {
	return &LicensesRepo{q: q}
}

func (r *LicensesRepo) Create(ctx context.Context, l licenses.License) error {
	query, args, err := builder().
		Insert("licenses").
		Columns(licenseColumns...).
		Values(
			l.ID,
			l.LicenseNumber,
			l.CompanyName,
			l.LicenseType,
			l.IssueDate,
			l.ExpiryDate,
			string(l.Status),
			l.IssuedBy,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert license: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return licenses.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *LicensesRepo) GetByID(ctx context.Context, id string) (licenses.License, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return licenses.License{}, licenses.ErrNotFound
	}

	query, args, err := builder().
		Select(licenseColumns...).
		From("licenses").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return licenses.License{}, fmt.Errorf("build select license: %w", err)
	}

	l, err := scanLicense(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return licenses.License{}, licenses.ErrNotFound
		}
		return licenses.License{}, err
	}
	return l, nil
}

func (r *LicensesRepo) List(ctx context.Context) ([]licenses.License, error) {
	query, args, err := builder().
		Select(licenseColumns...).
		From("licenses").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list licenses: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]licenses.License, 0)
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLicense(row pgx.Row) (licenses.License, error) {
	var (
		l      licenses.License
		status string
	)
	if err := row.Scan(
		&l.ID,
		&l.LicenseNumber,
		&l.CompanyName,
		&l.LicenseType,
		&l.IssueDate,
		&l.ExpiryDate,
		&status,
		&l.IssuedBy,
	); err != nil {
		return licenses.License{}, err
	}
	// estado desconocido se conserva tal cual; la UI usa el estilo por defecto
	l.Status, _ = licenses.ParseStatus(status)
	return l, nil
}
