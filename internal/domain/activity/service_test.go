package activity

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
	items []Activity
}

func (r *testRepo) Append(ctx context.Context, a Activity) error {
	for _, it := range r.items {
		if it.ID == a.ID {
			return ErrAlreadyExists
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Activity, error) {
	out := make([]Activity, len(r.items))
	copy(out, r.items)
	return out, nil
}

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(&testRepo{}, WithClock(func() time.Time { return fixedNow }))
}

func TestAppend_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bad := []Activity{
		{ID: "", Timestamp: fixedNow, Type: TypeIssued},
		{ID: "1", Type: TypeIssued},
		{ID: "1", Timestamp: fixedNow, Type: "revoked"},
	}
	for _, a := range bad {
		if _, err := svc.Append(ctx, a); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", a, err)
		}
	}

	if _, err := svc.Append(ctx, Activity{ID: "1", Timestamp: fixedNow, Type: TypeIssued}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.Append(ctx, Activity{ID: "1", Timestamp: fixedNow, Type: TypeRenewed}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFeed_PreservesOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// el orden de alta manda aunque los timestamps no estén ordenados
	in := []Activity{
		{ID: "1", Description: "New license issued: LIC-2024-00127", Timestamp: fixedNow.Add(-time.Hour), Type: TypeIssued},
		{ID: "2", Description: "License expired: LIC-2023-00890", Timestamp: fixedNow.Add(-48 * time.Hour), Type: TypeExpired},
		{ID: "3", Description: "License renewed: LIC-2024-00123", Timestamp: fixedNow.Add(-3 * time.Hour), Type: TypeRenewed},
	}
	for _, a := range in {
		if _, err := svc.Append(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.ID, err)
		}
	}

	feed, err := svc.Feed(ctx)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	want := []struct{ id, label, icon string }{
		{"1", "1 hour ago", "📜"},
		{"2", "2 days ago", "❌"},
		{"3", "3 hours ago", "🔄"},
	}
	if len(feed) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(feed))
	}
	for i, w := range want {
		if feed[i].ID != w.id || feed[i].Label != w.label || feed[i].Icon != w.icon {
			t.Fatalf("item %d: expected %+v, got id=%s label=%q icon=%q", i, w, feed[i].ID, feed[i].Label, feed[i].Icon)
		}
	}
}

func TestFeed_Empty(t *testing.T) {
	feed, err := newTestService().Feed(context.Background())
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d", len(feed))
	}
}
