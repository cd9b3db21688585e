package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/domain"
)

// ErrBookingNotFound marks a status update against a booking the local view
// does not contain.
var ErrBookingNotFound = errors.New("booking not found")

// StatusService applies validated lifecycle transitions through the API.
type StatusService struct {
	api       port.BookingAPI
	store     *Store
	refresher *RefreshService
}

func NewStatusService(api port.BookingAPI, store *Store, refresher *RefreshService) *StatusService {
	return &StatusService{api: api, store: store, refresher: refresher}
}

// UpdateBookingStatus validates the transition against the booking's current
// status before any network call. When validation fails the change is applied
// neither locally nor remotely. Requesting the current status again succeeds
// without touching the API.
func (s *StatusService) UpdateBookingStatus(ctx context.Context, bookingID string, next domain.BookingStatus, notes, adminID string) error {
	booking, ok := s.store.Booking(bookingID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if err := domain.ValidateTransition(booking.Status, next); err != nil {
		return err
	}
	if booking.Status == next {
		return nil
	}
	if err := s.api.UpdateStatus(ctx, bookingID, next, notes, adminID); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	slog.Info("booking status updated",
		slog.String("bookingId", bookingID),
		slog.String("from", string(booking.Status)),
		slog.String("to", string(next)),
	)
	if err := s.refresher.Refresh(ctx); err != nil {
		slog.Warn("post-update refresh failed", slog.Any("error", err))
	}
	return nil
}
