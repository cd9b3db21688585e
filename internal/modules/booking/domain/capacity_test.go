package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, ok := NormalizeDate(value)
	if !ok {
		t.Fatalf("bad test date %q", value)
	}
	return d
}

func overnightBooking(id string, room RoomType, status BookingStatus, start, end time.Time) Booking {
	return Booking{
		ID:          id,
		ServiceType: ServiceOvernight,
		RoomType:    room,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}
}

func TestCapacityRuleFor(t *testing.T) {
	rules := []struct {
		sel   Selection
		limit int
	}{
		{Selection{Service: ServiceOvernight, Room: RoomDeluxe}, 10},
		{Selection{Service: ServiceOvernight, Room: RoomPremium}, 10},
		{Selection{Service: ServiceOvernight, Room: RoomExecutive}, 2},
		{Selection{Service: ServiceDaycare}, 10},
		{Selection{Service: ServiceGrooming, Package: PackagePremiumGrooming}, 5},
		{Selection{Service: ServiceGrooming, Package: PackageBasicBath}, 10},
		{Selection{Service: ServiceGrooming, Package: PackageSpecialGrooming}, 5},
	}
	for _, rule := range rules {
		limit, err := CapacityRuleFor(rule.sel)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", rule.sel, err)
		}
		if limit != rule.limit {
			t.Fatalf("limit for %+v = %d, want %d", rule.sel, limit, rule.limit)
		}
	}
}

func TestCapacityRuleRequiresRoomForOvernight(t *testing.T) {
	_, err := CapacityRuleFor(Selection{Service: ServiceOvernight})
	if !errors.Is(err, ErrNoCapacityRule) {
		t.Fatalf("expected ErrNoCapacityRule for roomless overnight query, got %v", err)
	}
	_, err = CapacityRuleFor(Selection{Service: ServiceGrooming, Package: "mystery spa"})
	if !errors.Is(err, ErrNoCapacityRule) {
		t.Fatalf("expected ErrNoCapacityRule for unknown package, got %v", err)
	}
}

func TestCountBookingsExcludesInactiveStatuses(t *testing.T) {
	start := day(t, "2025-06-10")
	end := day(t, "2025-06-12")
	tracker := NewTracker([]Booking{
		overnightBooking("1", RoomDeluxe, StatusConfirmed, start, end),
		overnightBooking("2", RoomDeluxe, StatusPending, start, end),
		overnightBooking("3", RoomDeluxe, StatusCancelled, start, end),
		overnightBooking("4", RoomDeluxe, StatusCompleted, start, end),
		overnightBooking("5", RoomDeluxe, StatusNoShow, start, end),
	})
	sel := Selection{Service: ServiceOvernight, Room: RoomDeluxe}
	if got := tracker.CountBookings(start, sel); got != 2 {
		t.Fatalf("active count = %d, want 2", got)
	}
}

func TestCountBookingsSpansStayInterval(t *testing.T) {
	tracker := NewTracker([]Booking{
		overnightBooking("1", RoomDeluxe, StatusConfirmed, day(t, "2025-06-10"), day(t, "2025-06-12")),
	})
	sel := Selection{Service: ServiceOvernight, Room: RoomDeluxe}
	for _, d := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
		if got := tracker.CountBookings(day(t, d), sel); got != 1 {
			t.Fatalf("expected stay to occupy %s", d)
		}
	}
	if got := tracker.CountBookings(day(t, "2025-06-13"), sel); got != 0 {
		t.Fatalf("stay counted past check-out, got %d", got)
	}
}

func TestDaycareAtCapacityAfterTenBookings(t *testing.T) {
	target := day(t, "2025-06-20")
	bookings := make([]Booking, 0, 10)
	for i := 0; i < 10; i++ {
		bookings = append(bookings, Booking{
			ID:          fmt.Sprintf("dc-%d", i),
			ServiceType: ServiceDaycare,
			Status:      StatusConfirmed,
			StartDate:   target,
			EndDate:     target,
		})
	}
	tracker := NewTracker(bookings)
	sel := Selection{Service: ServiceDaycare}

	full, err := tracker.IsAtCapacity(target, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !full {
		t.Fatal("expected daycare to be at capacity with 10 bookings")
	}

	slots, err := tracker.AvailableSlots(target, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots != 0 {
		t.Fatalf("slots = %d, want 0", slots)
	}

	// Another day is untouched.
	other := day(t, "2025-06-21")
	if full, _ := tracker.IsAtCapacity(other, sel); full {
		t.Fatal("capacity leaked onto a different day")
	}
}

func TestAvailableSlotsNeverNegative(t *testing.T) {
	target := day(t, "2025-06-20")
	bookings := make([]Booking, 0, 4)
	for i := 0; i < 4; i++ {
		bookings = append(bookings, overnightBooking(fmt.Sprintf("ex-%d", i), RoomExecutive, StatusConfirmed, target, target))
	}
	tracker := NewTracker(bookings)
	sel := Selection{Service: ServiceOvernight, Room: RoomExecutive}

	// The server's list overshoots the executive limit of 2.
	slots, err := tracker.AvailableSlots(target, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots != 0 {
		t.Fatalf("slots = %d, want 0 (clamped)", slots)
	}
}

func TestGlobalDailyCeiling(t *testing.T) {
	target := day(t, "2025-06-20")
	bookings := make([]Booking, 0, GlobalDailyCeiling)
	for i := 0; i < GlobalDailyCeiling; i++ {
		bookings = append(bookings, Booking{
			ID:          fmt.Sprintf("b-%d", i),
			ServiceType: ServiceDaycare,
			Status:      StatusConfirmed,
			StartDate:   target,
			EndDate:     target,
		})
	}
	tracker := NewTracker(bookings)

	// Even a bucket with free slots is closed once the day hits the ceiling.
	full, err := tracker.IsAtCapacity(target, Selection{Service: ServiceOvernight, Room: RoomDeluxe})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !full {
		t.Fatal("expected global ceiling to close every bucket")
	}
	if got := tracker.CountAllBookings(target); got != GlobalDailyCeiling {
		t.Fatalf("CountAllBookings = %d, want %d", got, GlobalDailyCeiling)
	}
}

func TestCountServiceBookingsAggregatesRooms(t *testing.T) {
	target := day(t, "2025-06-20")
	tracker := NewTracker([]Booking{
		overnightBooking("1", RoomDeluxe, StatusConfirmed, target, target),
		overnightBooking("2", RoomPremium, StatusConfirmed, target, target),
		overnightBooking("3", RoomExecutive, StatusPending, target, target),
	})
	if got := tracker.CountServiceBookings(target, ServiceOvernight); got != 3 {
		t.Fatalf("service aggregate = %d, want 3", got)
	}
	if got := tracker.CountBookings(target, Selection{Service: ServiceOvernight, Room: RoomPremium}); got != 1 {
		t.Fatalf("premium count = %d, want 1", got)
	}
}
