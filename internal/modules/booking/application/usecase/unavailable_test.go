package usecase

import (
	"context"
	"testing"

	"petStayWs/internal/modules/booking/application/port"
)

func newUnavailableFixture(api *fakeAPI) (*UnavailableDateService, *Store, *fakeFallback, *fakeNotifier) {
	store := NewStore()
	store.ReplaceUnavailableDates(nil)
	fallback := &fakeFallback{}
	notifier := &fakeNotifier{}
	return NewUnavailableDateService(api, fallback, store, notifier), store, fallback, notifier
}

func TestAddUnavailableDate(t *testing.T) {
	api := &fakeAPI{}
	service, store, fallback, notifier := newUnavailableFixture(api)
	target := day(t, "2025-07-04")

	if err := service.AddUnavailableDate(context.Background(), target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.added) != 1 {
		t.Fatalf("remote adds = %d, want 1", len(api.added))
	}
	if !store.IsBlocked(target) {
		t.Fatal("expected day blocked locally")
	}
	if len(fallback.saved) != 1 {
		t.Fatalf("mirror writes = %d, want 1", len(fallback.saved))
	}
	if len(notifier.events) != 1 || notifier.events[0]["action"] != "blocked" {
		t.Fatalf("notifications = %+v", notifier.events)
	}
}

func TestAddUnavailableDateIdempotent(t *testing.T) {
	api := &fakeAPI{}
	service, _, _, _ := newUnavailableFixture(api)
	target := day(t, "2025-07-04")

	if err := service.AddUnavailableDate(context.Background(), target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.AddUnavailableDate(context.Background(), target); err != nil {
		t.Fatalf("repeat add should be a no-op success: %v", err)
	}
	if len(api.added) != 1 {
		t.Fatalf("remote adds = %d, want 1", len(api.added))
	}
}

func TestAddUnavailableDateRemoteFailureLeavesStateUnchanged(t *testing.T) {
	api := &fakeAPI{addErr: port.ErrUnauthorized}
	service, store, fallback, notifier := newUnavailableFixture(api)
	target := day(t, "2025-07-04")

	if err := service.AddUnavailableDate(context.Background(), target); err == nil {
		t.Fatal("expected remote failure to propagate")
	}
	if store.IsBlocked(target) {
		t.Fatal("remote failure must not mutate local state")
	}
	if len(fallback.saved) != 0 || len(notifier.events) != 0 {
		t.Fatal("remote failure must not mirror or notify")
	}
}

func TestRemoveUnavailableDate(t *testing.T) {
	api := &fakeAPI{}
	service, store, _, notifier := newUnavailableFixture(api)
	target := day(t, "2025-07-04")
	store.Block(target)

	if err := service.RemoveUnavailableDate(context.Background(), target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.IsBlocked(target) {
		t.Fatal("expected day unblocked")
	}
	if len(api.removed) != 1 {
		t.Fatalf("remote removes = %d, want 1", len(api.removed))
	}
	if len(notifier.events) != 1 || notifier.events[0]["action"] != "unblocked" {
		t.Fatalf("notifications = %+v", notifier.events)
	}
}

func TestRemoveUnavailableDateIdempotent(t *testing.T) {
	api := &fakeAPI{}
	service, _, _, _ := newUnavailableFixture(api)

	if err := service.RemoveUnavailableDate(context.Background(), day(t, "2025-07-04")); err != nil {
		t.Fatalf("removing an unblocked day should be a no-op success: %v", err)
	}
	if len(api.removed) != 0 {
		t.Fatalf("remote removes = %d, want 0", len(api.removed))
	}
}
