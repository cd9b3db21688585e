package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"petStayWs/internal/modules/booking/domain"
)

// fakeAPI is an in-memory stand-in for the remote booking service.
type fakeAPI struct {
	bookings  []domain.Booking
	listErr   error
	listCalls int

	dates    []time.Time
	datesErr error

	created   []domain.CanonicalPayload
	failOn    int // 1-based submission index that fails; 0 never fails
	createErr error

	statusCalls int
	updateErr   error

	added     []time.Time
	addErr    error
	removed   []time.Time
	removeErr error
}

func (f *fakeAPI) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, payload domain.CanonicalPayload) (string, error) {
	f.created = append(f.created, payload)
	if f.failOn > 0 && len(f.created) == f.failOn {
		if f.createErr != nil {
			return "", f.createErr
		}
		return "", errors.New("create failed")
	}
	return fmt.Sprintf("BK-%d", len(f.created)), nil
}

func (f *fakeAPI) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, notes, adminID string) error {
	f.statusCalls++
	return f.updateErr
}

func (f *fakeAPI) ListUnavailableDates(ctx context.Context) ([]time.Time, error) {
	if f.datesErr != nil {
		return nil, f.datesErr
	}
	return f.dates, nil
}

func (f *fakeAPI) AddUnavailableDate(ctx context.Context, day time.Time) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, day)
	return nil
}

func (f *fakeAPI) RemoveUnavailableDate(ctx context.Context, day time.Time) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, day)
	return nil
}

type fakeFallback struct {
	saved   [][]time.Time
	saveErr error
	loaded  []time.Time
	loadErr error
}

func (f *fakeFallback) SaveUnavailableDates(ctx context.Context, days []time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := make([]time.Time, len(days))
	copy(copied, days)
	f.saved = append(f.saved, copied)
	return nil
}

func (f *fakeFallback) LoadUnavailableDates(ctx context.Context) ([]time.Time, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.loaded, nil
}

type fakeNotifier struct {
	events []map[string]string
}

func (f *fakeNotifier) AvailabilityChanged(metadata map[string]string) {
	f.events = append(f.events, metadata)
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, ok := domain.NormalizeDate(value)
	if !ok {
		t.Fatalf("bad test date %q", value)
	}
	return d
}
