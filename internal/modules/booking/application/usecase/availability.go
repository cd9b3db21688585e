package usecase

import (
	"time"

	"petStayWs/internal/modules/booking/domain"
)

// Availability is the advisory answer a calendar UI renders for one date and
// selection. Known=false means the local view is stale (a fetch failed) and
// must be displayed as "unknown", never collapsed to zero. The server remains
// the final arbiter either way; a race with another client is resolved by
// accepting the server's rejection.
type Availability struct {
	Known      bool
	Blocked    bool
	AtCapacity bool
	Slots      int
	Bookable   bool
}

// AvailabilityService answers bookability questions from the local store by
// combining the capacity tracker with the blocked-date registry.
type AvailabilityService struct {
	store *Store
}

func NewAvailabilityService(store *Store) *AvailabilityService {
	return &AvailabilityService{store: store}
}

// Check computes the availability of one selection on one day. Returns
// domain.ErrNoCapacityRule when the selection names no configured bucket
// (e.g. an overnight query without a room type).
func (s *AvailabilityService) Check(day time.Time, sel domain.Selection) (Availability, error) {
	bookings, known := s.store.Bookings()
	_, blockedKnown := s.store.UnavailableDates()

	tracker := domain.NewTracker(bookings)
	atCapacity, err := tracker.IsAtCapacity(day, sel)
	if err != nil {
		return Availability{}, err
	}
	slots, err := tracker.AvailableSlots(day, sel)
	if err != nil {
		return Availability{}, err
	}

	result := Availability{
		Known:      known && blockedKnown,
		Blocked:    s.IsUnavailable(day),
		AtCapacity: atCapacity,
		Slots:      slots,
	}
	result.Bookable = result.Known && !result.Blocked && !result.AtCapacity
	return result, nil
}

// IsUnavailable reports whether the day is closed to all new bookings: an
// explicit admin block or the global daily ceiling.
func (s *AvailabilityService) IsUnavailable(day time.Time) bool {
	if s.store.IsBlocked(day) {
		return true
	}
	bookings, _ := s.store.Bookings()
	return domain.NewTracker(bookings).CountAllBookings(day) >= domain.GlobalDailyCeiling
}
