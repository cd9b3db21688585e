package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"petStayWs/internal/modules/booking/application/port"
)

// RefreshService re-fetches the authoritative state from the booking API and
// swaps the local store. Callers invoke it after every successful write and
// on broker events; availability answers are not to be trusted between a
// write and the next refresh.
type RefreshService struct {
	api      port.BookingAPI
	fallback port.FallbackStore
	store    *Store
	notifier port.AvailabilityNotifier
}

func NewRefreshService(api port.BookingAPI, fallback port.FallbackStore, store *Store, notifier port.AvailabilityNotifier) *RefreshService {
	return &RefreshService{api: api, fallback: fallback, store: store, notifier: notifier}
}

// Refresh fetches the booking list and the unavailable-date set. A failed
// booking fetch marks the view unknown and is returned to the caller. A
// failed date fetch degrades to the local fallback mirror; only when both
// fail is the date set marked stale.
func (s *RefreshService) Refresh(ctx context.Context) error {
	bookings, err := s.api.ListBookings(ctx)
	if err != nil {
		s.store.MarkBookingsUnknown()
		slog.Warn("booking list fetch failed", slog.Any("error", err))
		return fmt.Errorf("refresh bookings: %w", err)
	}
	s.store.ReplaceBookings(bookings)

	days, err := s.api.ListUnavailableDates(ctx)
	if err != nil {
		slog.Warn("unavailable dates fetch failed", slog.Any("error", err))
		if s.fallback == nil {
			return fmt.Errorf("refresh unavailable dates: %w", err)
		}
		mirrored, fallbackErr := s.fallback.LoadUnavailableDates(ctx)
		if fallbackErr != nil {
			slog.Warn("unavailable dates fallback read failed", slog.Any("error", fallbackErr))
			return fmt.Errorf("refresh unavailable dates: %w", err)
		}
		slog.Info("unavailable dates served from fallback", slog.Int("count", len(mirrored)))
		s.store.ReplaceUnavailableDates(mirrored)
		s.notifyChanged(len(bookings), len(mirrored))
		return nil
	}
	s.store.ReplaceUnavailableDates(days)
	if s.fallback != nil {
		if err := s.fallback.SaveUnavailableDates(ctx, days); err != nil {
			slog.Warn("unavailable dates mirror write failed", slog.Any("error", err))
		}
	}
	s.notifyChanged(len(bookings), len(days))
	return nil
}

func (s *RefreshService) notifyChanged(bookings, blocked int) {
	if s.notifier == nil {
		return
	}
	s.notifier.AvailabilityChanged(map[string]string{
		"bookings":         fmt.Sprintf("%d", bookings),
		"unavailableDates": fmt.Sprintf("%d", blocked),
	})
}
