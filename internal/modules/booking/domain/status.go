package domain

import (
	"errors"
	"fmt"
	"strings"
)

// BookingStatus represents the lifecycle of a booking as exposed by the REST API.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	// StatusNoShow is assigned by the server only; it is never a valid target
	// of a client-side transition.
	StatusNoShow BookingStatus = "no-show"
)

var statusAliases = map[string]BookingStatus{
	"pending":   StatusPending,
	"confirmed": StatusConfirmed,
	"completed": StatusCompleted,
	"cancelled": StatusCancelled,
	"canceled":  StatusCancelled,
	"no-show":   StatusNoShow,
	"no_show":   StatusNoShow,
	"noshow":    StatusNoShow,
}

// ParseBookingStatus resolves a status label strictly: the second return is
// false when the label matches no known alias. Callers accepting user input
// use this; the pending default below is only for normalizing remote payloads.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// NormalizeBookingStatus returns the canonical status for the given input,
// defaulting to pending when the value is absent or unrecognized.
func NormalizeBookingStatus(value any) BookingStatus {
	s, ok := value.(string)
	if !ok {
		return StatusPending
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if status, ok := statusAliases[trimmed]; ok {
		return status
	}
	return StatusPending
}

// CountsTowardCapacity reports whether a booking in this status still occupies
// a slot. Cancelled, completed and no-show bookings do not.
func (s BookingStatus) CountsTowardCapacity() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return false
	default:
		return true
	}
}

var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// ErrInvalidTransition marks a status change the lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// ValidateTransition checks whether the booking lifecycle allows moving from
// current to next. Requesting the current status again is a no-op success.
// Failures identify both states so the caller can surface them without
// applying the change.
func ValidateTransition(current, next BookingStatus) error {
	if current == next {
		return nil
	}
	allowed, known := allowedTransitions[current]
	if !known {
		return fmt.Errorf("%w: unknown current status %q", ErrInvalidTransition, current)
	}
	for _, candidate := range allowed {
		if candidate == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
}
