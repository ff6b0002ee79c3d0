package licenses

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	order []string
	byID  map[string]License
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]License{}}
}

func (r *testRepo) Create(ctx context.Context, l License) error {
	if _, ok := r.byID[l.ID]; ok {
		return ErrAlreadyExists
	}
	r.byID[l.ID] = l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (License, error) {
	l, ok := r.byID[id]
	if !ok {
		return License{}, ErrNotFound
	}
	return l, nil
}

func (r *testRepo) List(ctx context.Context) ([]License, error) {
	out := make([]License, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// -------------------------
// Helpers
// -------------------------

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(repo, opts...), repo
}

func mockLicenses() []License {
	return []License{
		{ID: "1", LicenseNumber: "LIC-2024-00123", IssueDate: "2024-01-15", ExpiryDate: "2025-01-14", Status: StatusActive},
		{ID: "2", LicenseNumber: "LIC-2024-00124", IssueDate: "2024-02-20", ExpiryDate: "2025-02-19", Status: StatusActive},
		{ID: "3", LicenseNumber: "LIC-2023-00890", IssueDate: "2023-11-10", ExpiryDate: "2024-11-09", Status: StatusExpired},
		{ID: "4", LicenseNumber: "LIC-2024-00125", IssueDate: "2024-03-05", ExpiryDate: "2025-03-04", Status: StatusActive},
		{ID: "5", LicenseNumber: "LIC-2024-00126", IssueDate: "2024-04-12", ExpiryDate: "2025-04-11", Status: StatusSuspended},
		{ID: "6", LicenseNumber: "LIC-2024-00127", IssueDate: "2024-12-01", ExpiryDate: "2025-11-30", Status: StatusPending},
	}
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	for _, l := range mockLicenses() {
		if _, err := svc.Create(context.Background(), l); err != nil {
			t.Fatalf("seed %s: %v", l.ID, err)
		}
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, License{LicenseNumber: "X", Status: StatusActive}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}
	if _, err := svc.Create(ctx, License{ID: "1", Status: StatusActive}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing number, got %v", err)
	}
	if _, err := svc.Create(ctx, License{ID: "1", LicenseNumber: "X", Status: "Revoked"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	l, err := svc.Create(ctx, License{ID: " 1 ", LicenseNumber: "X", Status: "pending"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID != "1" || l.Status != StatusPending {
		t.Fatalf("expected normalized license, got %+v", l)
	}

	if _, err := svc.Create(ctx, License{ID: "1", LicenseNumber: "Y", Status: StatusActive}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMetrics_MockData(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	m, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	want := Metrics{Total: 6, Active: 3, Expired: 1, Suspended: 1, Pending: 1, ExpiringSoon: 1}
	if m != want {
		t.Fatalf("expected %+v, got %+v", want, m)
	}
}

func TestMetrics_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m != (Metrics{}) {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestMetrics_WiderWindow(t *testing.T) {
	// con 60 días entra también LIC-2024-00124 (vence 2025-02-19)
	svc, _ := newTestService(t, WithWindowDays(60))
	seed(t, svc)

	m, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.ExpiringSoon != 2 {
		t.Fatalf("expected 2 expiring soon with 60d window, got %d", m.ExpiringSoon)
	}
	if svc.WindowDays() != 60 {
		t.Fatalf("expected window 60, got %d", svc.WindowDays())
	}
}

func TestRows_KeepOrderAndLabels(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	rows, m, err := svc.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 6 || m.Total != 6 {
		t.Fatalf("expected 6 rows, got %d (total=%d)", len(rows), m.Total)
	}
	for i, l := range mockLicenses() {
		if rows[i].ID != l.ID {
			t.Fatalf("row %d: expected id %s, got %s", i, l.ID, rows[i].ID)
		}
	}

	first := rows[0]
	if first.IssueDateLabel != "Jan 15, 2024" || first.ExpiryDateLabel != "Jan 14, 2025" {
		t.Fatalf("unexpected labels: %q %q", first.IssueDateLabel, first.ExpiryDateLabel)
	}
	if !first.ExpiringSoon {
		t.Fatalf("expected first row expiring soon")
	}
	if first.Style != StyleFor(StatusActive) {
		t.Fatalf("unexpected style %+v", first.Style)
	}
	if rows[2].ExpiringSoon {
		t.Fatalf("expired row must not be expiring soon")
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)
	ctx := context.Background()

	l, err := svc.GetByID(ctx, "5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.Status != StatusSuspended {
		t.Fatalf("expected Suspended, got %s", l.Status)
	}
	if _, err := svc.GetByID(ctx, "99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
