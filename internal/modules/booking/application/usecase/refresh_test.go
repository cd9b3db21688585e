package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"petStayWs/internal/modules/booking/domain"
)

func TestRefreshReplacesStoreWholesale(t *testing.T) {
	blocked := day(t, "2025-07-04")
	api := &fakeAPI{
		bookings: []domain.Booking{{ID: "1", ServiceType: domain.ServiceDaycare, Status: domain.StatusConfirmed}},
		dates:    []time.Time{blocked},
	}
	fallback := &fakeFallback{}
	notifier := &fakeNotifier{}
	store := NewStore()
	refresher := NewRefreshService(api, fallback, store, notifier)

	if err := refresher.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookings, known := store.Bookings()
	if !known || len(bookings) != 1 {
		t.Fatalf("bookings = %d known=%v, want 1/true", len(bookings), known)
	}
	if !store.IsBlocked(blocked) {
		t.Fatal("expected blocked day in store")
	}
	if len(fallback.saved) != 1 {
		t.Fatalf("mirror writes = %d, want 1", len(fallback.saved))
	}
	if len(notifier.events) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.events))
	}
}

func TestRefreshBookingFetchFailureMarksUnknown(t *testing.T) {
	store := NewStore()
	store.ReplaceBookings([]domain.Booking{{ID: "1"}})

	api := &fakeAPI{listErr: errors.New("connection refused")}
	refresher := NewRefreshService(api, nil, store, nil)

	if err := refresher.Refresh(context.Background()); err == nil {
		t.Fatal("expected error from failed booking fetch")
	}
	bookings, known := store.Bookings()
	if known {
		t.Fatal("expected bookings to be marked unknown")
	}
	// The previous list stays for display.
	if len(bookings) != 1 {
		t.Fatalf("bookings = %d, want previous list kept", len(bookings))
	}
}

func TestRefreshDateFetchDegradesToFallback(t *testing.T) {
	mirrored := day(t, "2025-07-04")
	api := &fakeAPI{datesErr: errors.New("timeout")}
	fallback := &fakeFallback{loaded: []time.Time{mirrored}}
	store := NewStore()
	refresher := NewRefreshService(api, fallback, store, nil)

	if err := refresher.Refresh(context.Background()); err != nil {
		t.Fatalf("expected fallback degradation, got %v", err)
	}
	if !store.IsBlocked(mirrored) {
		t.Fatal("expected mirrored day in store")
	}
	if _, known := store.UnavailableDates(); !known {
		t.Fatal("fallback-served dates should count as known")
	}
}

func TestRefreshDateFetchFailsWithoutFallback(t *testing.T) {
	api := &fakeAPI{datesErr: errors.New("timeout")}
	store := NewStore()
	refresher := NewRefreshService(api, nil, store, nil)

	if err := refresher.Refresh(context.Background()); err == nil {
		t.Fatal("expected error when dates fail and no fallback exists")
	}
	if _, known := store.UnavailableDates(); known {
		t.Fatal("date set should remain unknown")
	}
}

func TestRefreshDateFetchAndFallbackBothFail(t *testing.T) {
	api := &fakeAPI{datesErr: errors.New("timeout")}
	fallback := &fakeFallback{loadErr: errors.New("redis down")}
	store := NewStore()
	refresher := NewRefreshService(api, fallback, store, nil)

	if err := refresher.Refresh(context.Background()); err == nil {
		t.Fatal("expected error when both remote and fallback fail")
	}
}
