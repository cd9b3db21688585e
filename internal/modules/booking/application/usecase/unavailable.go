package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/domain"
)

// UnavailableDateService manages the explicitly-blocked calendar dates. Every
// write round-trips through the API before the local set and the fallback
// mirror are touched; a remote failure leaves local state unchanged.
type UnavailableDateService struct {
	api      port.BookingAPI
	fallback port.FallbackStore
	store    *Store
	notifier port.AvailabilityNotifier
}

func NewUnavailableDateService(api port.BookingAPI, fallback port.FallbackStore, store *Store, notifier port.AvailabilityNotifier) *UnavailableDateService {
	return &UnavailableDateService{api: api, fallback: fallback, store: store, notifier: notifier}
}

// AddUnavailableDate blocks a calendar day for all new bookings. Adding an
// already-blocked day is a no-op success.
func (s *UnavailableDateService) AddUnavailableDate(ctx context.Context, day time.Time) error {
	if day.IsZero() {
		return fmt.Errorf("%w: missing date", domain.ErrDraftInvalid)
	}
	if s.store.IsBlocked(day) {
		return nil
	}
	if err := s.api.AddUnavailableDate(ctx, day); err != nil {
		return err
	}
	s.store.Block(day)
	s.mirror(ctx)
	s.notify("blocked", day)
	return nil
}

// RemoveUnavailableDate unblocks a calendar day. Removing a day that is not
// blocked is a no-op success.
func (s *UnavailableDateService) RemoveUnavailableDate(ctx context.Context, day time.Time) error {
	if day.IsZero() {
		return fmt.Errorf("%w: missing date", domain.ErrDraftInvalid)
	}
	if !s.store.IsBlocked(day) {
		return nil
	}
	if err := s.api.RemoveUnavailableDate(ctx, day); err != nil {
		return err
	}
	s.store.Unblock(day)
	s.mirror(ctx)
	s.notify("unblocked", day)
	return nil
}

func (s *UnavailableDateService) mirror(ctx context.Context) {
	if s.fallback == nil {
		return
	}
	days, known := s.store.UnavailableDates()
	if !known {
		return
	}
	if err := s.fallback.SaveUnavailableDates(ctx, days); err != nil {
		slog.Warn("unavailable dates mirror write failed", slog.Any("error", err))
	}
}

func (s *UnavailableDateService) notify(action string, day time.Time) {
	if s.notifier == nil {
		return
	}
	s.notifier.AvailabilityChanged(map[string]string{
		"action": action,
		"date":   domain.FormatAPIDate(day),
	})
}
