package usecase

import (
	"sync"
	"time"

	"petStayWs/internal/modules/booking/domain"
)

// Store holds the process-local view of the remote booking service: the
// authoritative booking list and the explicitly-blocked date set. Consumers
// read snapshots through query methods and never mutate the store directly;
// all writes go through the usecases, which round-trip through the API first.
//
// The Known flags distinguish "fetched and empty" from "fetch failed" so the
// UI can show unknown availability instead of a misleading zero.
type Store struct {
	mu            sync.RWMutex
	bookings      []domain.Booking
	bookingsKnown bool
	blocked       map[string]time.Time
	blockedKnown  bool
}

func NewStore() *Store {
	return &Store{blocked: make(map[string]time.Time)}
}

// ReplaceBookings swaps the authoritative booking list wholesale. Incremental
// patching is deliberately unsupported: it risks drifting from the server's
// view when another client books concurrently.
func (s *Store) ReplaceBookings(bookings []domain.Booking) {
	copied := make([]domain.Booking, len(bookings))
	copy(copied, bookings)
	s.mu.Lock()
	s.bookings = copied
	s.bookingsKnown = true
	s.mu.Unlock()
}

// MarkBookingsUnknown flags the booking view as stale after a failed fetch.
// The previous list is kept for display but capacity answers report unknown.
func (s *Store) MarkBookingsUnknown() {
	s.mu.Lock()
	s.bookingsKnown = false
	s.mu.Unlock()
}

// Bookings returns a snapshot copy of the list plus whether it reflects a
// successful fetch.
func (s *Store) Bookings() ([]domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]domain.Booking, len(s.bookings))
	copy(copied, s.bookings)
	return copied, s.bookingsKnown
}

// Booking looks up one record by id.
func (s *Store) Booking(id string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// ReplaceUnavailableDates swaps the blocked-date set wholesale.
func (s *Store) ReplaceUnavailableDates(days []time.Time) {
	blocked := make(map[string]time.Time, len(days))
	for _, day := range days {
		if key := domain.FormatAPIDate(day); key != "" {
			blocked[key] = day
		}
	}
	s.mu.Lock()
	s.blocked = blocked
	s.blockedKnown = true
	s.mu.Unlock()
}

// Block adds one day to the local set after a confirmed remote write.
func (s *Store) Block(day time.Time) {
	key := domain.FormatAPIDate(day)
	if key == "" {
		return
	}
	s.mu.Lock()
	s.blocked[key] = day
	s.mu.Unlock()
}

// Unblock removes one day from the local set after a confirmed remote write.
func (s *Store) Unblock(day time.Time) {
	s.mu.Lock()
	delete(s.blocked, domain.FormatAPIDate(day))
	s.mu.Unlock()
}

// IsBlocked reports explicit-block membership by calendar day.
func (s *Store) IsBlocked(day time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, blocked := s.blocked[domain.FormatAPIDate(day)]
	return blocked
}

// UnavailableDates returns the blocked days plus whether the set reflects a
// successful fetch (remote or fallback).
func (s *Store) UnavailableDates() ([]time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	days := make([]time.Time, 0, len(s.blocked))
	for _, day := range s.blocked {
		days = append(days, day)
	}
	return days, s.blockedKnown
}
