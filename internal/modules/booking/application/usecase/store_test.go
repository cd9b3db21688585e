package usecase

import (
	"testing"
	"time"

	"petStayWs/internal/modules/booking/domain"
)

func TestStoreBookingsSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.ReplaceBookings([]domain.Booking{{ID: "1"}, {ID: "2"}})

	snapshot, known := store.Bookings()
	if !known || len(snapshot) != 2 {
		t.Fatalf("snapshot = %d known=%v", len(snapshot), known)
	}
	snapshot[0].ID = "mutated"
	again, _ := store.Bookings()
	if again[0].ID != "1" {
		t.Fatal("store leaked its internal slice")
	}
}

func TestStoreKnownFlags(t *testing.T) {
	store := NewStore()
	if _, known := store.Bookings(); known {
		t.Fatal("fresh store must report bookings unknown")
	}
	if _, known := store.UnavailableDates(); known {
		t.Fatal("fresh store must report dates unknown")
	}

	store.ReplaceBookings(nil)
	if _, known := store.Bookings(); !known {
		t.Fatal("an empty successful fetch is still known")
	}
	store.MarkBookingsUnknown()
	if _, known := store.Bookings(); known {
		t.Fatal("expected unknown after failed fetch")
	}
}

func TestStoreBookingLookup(t *testing.T) {
	store := NewStore()
	store.ReplaceBookings([]domain.Booking{{ID: "7", Status: domain.StatusPending}})

	booking, ok := store.Booking("7")
	if !ok || booking.Status != domain.StatusPending {
		t.Fatalf("lookup = %+v ok=%v", booking, ok)
	}
	if _, ok := store.Booking("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestStoreBlockKeysByCalendarDay(t *testing.T) {
	store := NewStore()
	store.ReplaceUnavailableDates(nil)

	morning := time.Date(2025, time.July, 4, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.July, 4, 22, 0, 0, 0, time.Local)
	store.Block(morning)
	if !store.IsBlocked(evening) {
		t.Fatal("block must apply to the whole calendar day")
	}
	store.Unblock(evening)
	if store.IsBlocked(morning) {
		t.Fatal("unblock must apply to the whole calendar day")
	}
}
