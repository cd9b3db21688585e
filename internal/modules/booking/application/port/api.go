package port

import (
	"context"
	"errors"
	"time"

	"petStayWs/internal/modules/booking/domain"
)

// Sentinel errors the adapters translate HTTP failures into. The usecases
// and the transport layer branch on these, never on status codes.
var (
	// ErrUnauthorized maps 401/403 responses: the caller's token was missing
	// or rejected. No local state is mutated when this is returned.
	ErrUnauthorized = errors.New("booking api authorization failed")
	// ErrNotConfigured maps 404 responses: the endpoint is absent, which is a
	// deployment/configuration problem rather than a data one.
	ErrNotConfigured = errors.New("booking api endpoint not found")
)

// BookingAPI is the remote booking service consumed as a client. It is the
// single source of truth: every write round-trips through it, and the local
// view is replaced wholesale afterwards rather than patched.
type BookingAPI interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	// CreateBooking submits one pet's canonical payload and returns the
	// assigned reference number.
	CreateBooking(ctx context.Context, payload domain.CanonicalPayload) (string, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, notes, adminID string) error
	ListUnavailableDates(ctx context.Context) ([]time.Time, error)
	AddUnavailableDate(ctx context.Context, day time.Time) error
	RemoveUnavailableDate(ctx context.Context, day time.Time) error
}

// FallbackStore mirrors the unavailable-date set locally so the registry can
// degrade when the remote API is unreachable. It is read only as a fallback,
// never preferred over a successful remote fetch.
type FallbackStore interface {
	SaveUnavailableDates(ctx context.Context, days []time.Time) error
	LoadUnavailableDates(ctx context.Context) ([]time.Time, error)
}

// AvailabilityNotifier receives a signal after every successful refresh so
// connected clients can re-query instead of trusting stale local state.
type AvailabilityNotifier interface {
	AvailabilityChanged(metadata map[string]string)
}
