package domain

import (
	"errors"
	"fmt"
	"time"
)

// Capacity rules: maximum concurrent bookings per day for each service/room
// combination, plus a global ceiling across all services. Configuration
// constants; never change at runtime.
var roomCapacity = map[RoomType]int{
	RoomDeluxe:    10,
	RoomPremium:   10,
	RoomExecutive: 2,
}

var groomingCapacity = map[string]int{
	PackagePremiumGrooming: 5,
	PackageBasicBath:       10,
	PackageSpecialGrooming: 5,
}

const (
	daycareCapacity    = 10
	GlobalDailyCeiling = 50
)

// ErrNoCapacityRule marks a capacity query whose service/room/package
// combination has no configured rule. Overnight queries must name a specific
// room type; aggregating across rooms silently would give wrong answers.
var ErrNoCapacityRule = errors.New("no capacity rule for selection")

// Selection identifies a capacity bucket: a service type plus, where the
// service has sub-types, a room or package.
type Selection struct {
	Service ServiceType
	Room    RoomType
	Package string
}

// CapacityRuleFor resolves the configured maximum for a selection.
func CapacityRuleFor(sel Selection) (int, error) {
	switch sel.Service {
	case ServiceOvernight:
		if limit, ok := roomCapacity[sel.Room]; ok {
			return limit, nil
		}
		return 0, fmt.Errorf("%w: overnight requires a room type", ErrNoCapacityRule)
	case ServiceDaycare:
		return daycareCapacity, nil
	case ServiceGrooming:
		if limit, ok := groomingCapacity[NormalizePackage(sel.Package)]; ok {
			return limit, nil
		}
		return 0, fmt.Errorf("%w: unknown grooming package %q", ErrNoCapacityRule, sel.Package)
	default:
		return 0, fmt.Errorf("%w: unknown service %q", ErrNoCapacityRule, sel.Service)
	}
}

// Tracker answers occupancy questions over a snapshot of the authoritative
// booking list. It holds no state of its own beyond the slice it was built
// with; callers rebuild it after every refresh.
type Tracker struct {
	bookings []Booking
}

func NewTracker(bookings []Booking) *Tracker {
	return &Tracker{bookings: bookings}
}

// occupies reports whether the booking holds a slot on the given day:
// active status and the inclusive [StartDate, EndDate] interval contains it.
func occupies(b Booking, day time.Time) bool {
	return b.Status.CountsTowardCapacity() && ContainsDay(day, b.StartDate, b.EndDate)
}

// CountBookings returns the number of active bookings occupying the
// selection's bucket on the given day.
func (t *Tracker) CountBookings(day time.Time, sel Selection) int {
	count := 0
	for _, b := range t.bookings {
		if b.ServiceType != sel.Service || !occupies(b, day) {
			continue
		}
		switch sel.Service {
		case ServiceOvernight:
			if sel.Room != RoomUnknown && b.RoomType != sel.Room {
				continue
			}
		case ServiceGrooming:
			if pkg := NormalizePackage(sel.Package); pkg != "" && b.PackageName != pkg {
				continue
			}
		}
		count++
	}
	return count
}

// CountServiceBookings is the coarse "any slot of this service" query; it
// aggregates across rooms and packages.
func (t *Tracker) CountServiceBookings(day time.Time, service ServiceType) int {
	return t.CountBookings(day, Selection{Service: service})
}

// CountAllBookings counts active bookings of every service on the given day,
// for the global daily ceiling.
func (t *Tracker) CountAllBookings(day time.Time) int {
	count := 0
	for _, b := range t.bookings {
		if occupies(b, day) {
			count++
		}
	}
	return count
}

// IsAtCapacity reports whether the selection's bucket is exhausted on the
// given day, either by its own rule or by the global daily ceiling.
func (t *Tracker) IsAtCapacity(day time.Time, sel Selection) (bool, error) {
	if t.CountAllBookings(day) >= GlobalDailyCeiling {
		return true, nil
	}
	limit, err := CapacityRuleFor(sel)
	if err != nil {
		return false, err
	}
	return t.CountBookings(day, sel) >= limit, nil
}

// AvailableSlots returns the remaining capacity for the selection's bucket,
// clamped at zero even when the server's list overshoots the rule.
func (t *Tracker) AvailableSlots(day time.Time, sel Selection) (int, error) {
	limit, err := CapacityRuleFor(sel)
	if err != nil {
		return 0, err
	}
	remaining := limit - t.CountBookings(day, sel)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}
