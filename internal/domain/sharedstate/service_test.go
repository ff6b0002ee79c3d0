package sharedstate_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	adids "license-management/internal/adapters/ids"
	mem "license-management/internal/adapters/storage/memory"
	"license-management/internal/domain/sharedstate"
	"license-management/internal/ports/ids"
	"license-management/internal/ports/sharedstore"
)

type downStore struct{}

func (downStore) Counter(ctx context.Context) (sharedstore.CounterState, error) {
	return sharedstore.CounterState{}, sharedstore.ErrUnavailable
}

func (downStore) Users(ctx context.Context) (sharedstore.UsersState, error) {
	return sharedstore.UsersState{}, sharedstore.ErrUnavailable
}

func (downStore) Dispatch(ctx context.Context, a sharedstore.Action) error {
	return sharedstore.ErrUnavailable
}

func TestCounterActions(t *testing.T) {
	svc := sharedstate.NewService(mem.NewSharedStore(), adids.NewSequence(""))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c, err := svc.Increment(ctx)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if c.Value != i {
			t.Fatalf("expected %d, got %d", i, c.Value)
		}
	}

	c, err := svc.Reset(ctx)
	if err != nil || c.Value != 0 {
		t.Fatalf("expected 0 after reset, got %d err=%v", c.Value, err)
	}

	// sin clamp: puede quedar negativo
	c, err = svc.Decrement(ctx)
	if err != nil || c.Value != -1 {
		t.Fatalf("expected -1 after decrement, got %d err=%v", c.Value, err)
	}
}

func TestAddLicenseOfficer(t *testing.T) {
	store := mem.NewSharedStore()
	svc := sharedstate.NewService(store, adids.NewSequence(""))
	ctx := context.Background()

	u, st, err := svc.AddLicenseOfficer(ctx)
	if err != nil {
		t.Fatalf("add officer: %v", err)
	}
	want := sharedstore.User{ID: "1", Name: "License Officer 1", Email: "officer1@licenses.gov", Role: "License Officer"}
	if u != want {
		t.Fatalf("expected %+v, got %+v", want, u)
	}
	if st.TotalCount != 1 {
		t.Fatalf("expected totalCount 1, got %d", st.TotalCount)
	}

	if _, st, err = svc.AddLicenseOfficer(ctx); err != nil || st.TotalCount != 2 {
		t.Fatalf("expected totalCount 2, got %d err=%v", st.TotalCount, err)
	}
	if got := store.ListUsers(); len(got) != 2 || got[1].ID != "2" {
		t.Fatalf("unexpected users in store: %+v", got)
	}
}

func TestAddLicenseOfficer_EmptyID(t *testing.T) {
	svc := sharedstate.NewService(mem.NewSharedStore(), ids.Func(func() string { return " " }))

	if _, _, err := svc.AddLicenseOfficer(context.Background()); !errors.Is(err, sharedstate.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDispatch_Validates(t *testing.T) {
	svc := sharedstate.NewService(mem.NewSharedStore(), adids.NewSequence(""))
	ctx := context.Background()

	if err := svc.Dispatch(ctx, sharedstore.Action{Type: "counter/explode"}); !errors.Is(err, sharedstore.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if err := svc.Dispatch(ctx, sharedstore.Action{Type: sharedstore.ActionAddUser}); !errors.Is(err, sharedstore.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestStoreUnavailable(t *testing.T) {
	svc := sharedstate.NewService(downStore{}, adids.NewSequence(""))
	ctx := context.Background()

	if _, err := svc.Increment(ctx); !errors.Is(err, sharedstore.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := svc.Snapshot(ctx); !errors.Is(err, sharedstore.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, _, err := svc.AddLicenseOfficer(ctx); !errors.Is(err, sharedstore.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	svc := sharedstate.NewService(mem.NewSharedStore(), adids.NewSequence(""))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Increment(ctx)
		}()
	}
	wg.Wait()

	c, err := svc.Counter(ctx)
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if c.Value != 50 {
		t.Fatalf("expected 50, got %d", c.Value)
	}
}
