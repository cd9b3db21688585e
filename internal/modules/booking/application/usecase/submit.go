package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/domain"
)

// ErrDateUnavailable marks a submission rejected locally because the
// requested date is blocked or at capacity. Advisory only: the server may
// still reject a submission that passed this gate.
var ErrDateUnavailable = errors.New("date unavailable")

// SubmissionResult reports the outcome for one pet in a reservation.
type SubmissionResult struct {
	PetName   string
	Reference string
	Err       error
}

// SubmitService validates drafts and submits them to the booking API.
type SubmitService struct {
	api          port.BookingAPI
	availability *AvailabilityService
	refresher    *RefreshService
}

func NewSubmitService(api port.BookingAPI, availability *AvailabilityService, refresher *RefreshService) *SubmitService {
	return &SubmitService{api: api, availability: availability, refresher: refresher}
}

// Quote computes the running total for a reservation without submitting.
// Incomplete selections price at zero.
func (s *SubmitService) Quote(rawPets []map[string]any) (int, []domain.Draft) {
	drafts := make([]domain.Draft, 0, len(rawPets))
	for _, raw := range rawPets {
		drafts = append(drafts, domain.BuildDraft(raw))
	}
	return domain.ReservationTotal(drafts), drafts
}

// SubmitReservation normalizes, validates, gates and submits one draft per
// pet, sequentially. Validation and availability failures are reported before
// any network call. A mid-loop network failure stops the loop: submissions
// already accepted stay committed on the server with no rollback, and the
// per-pet results tell the caller exactly which pets succeeded.
func (s *SubmitService) SubmitReservation(ctx context.Context, rawPets []map[string]any) ([]SubmissionResult, error) {
	if len(rawPets) == 0 {
		return nil, fmt.Errorf("%w: no pets in reservation", domain.ErrDraftInvalid)
	}

	drafts := make([]domain.Draft, 0, len(rawPets))
	for i, raw := range rawPets {
		draft := domain.BuildDraft(raw)
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("pet %d (%s): %w", i+1, draft.Pet.Name, err)
		}
		available, err := s.availability.Check(draft.Start, draft.Selection())
		if err != nil {
			return nil, fmt.Errorf("pet %d (%s): %w", i+1, draft.Pet.Name, err)
		}
		if available.Blocked || available.AtCapacity {
			return nil, fmt.Errorf("pet %d (%s) on %s: %w", i+1, draft.Pet.Name, domain.FormatAPIDate(draft.Start), ErrDateUnavailable)
		}
		drafts = append(drafts, draft)
	}

	results := make([]SubmissionResult, 0, len(drafts))
	var failure error
	for i, draft := range drafts {
		reference, err := s.api.CreateBooking(ctx, draft.Payload())
		if err != nil {
			slog.Warn("booking submission failed",
				slog.Int("pet", i+1),
				slog.String("petName", draft.Pet.Name),
				slog.Any("error", err),
			)
			results = append(results, SubmissionResult{PetName: draft.Pet.Name, Err: err})
			failure = fmt.Errorf("pet %d (%s): %w", i+1, draft.Pet.Name, err)
			break
		}
		slog.Info("booking submitted", slog.String("petName", draft.Pet.Name), slog.String("reference", reference))
		results = append(results, SubmissionResult{PetName: draft.Pet.Name, Reference: reference})
	}

	// Anything accepted so far changed the server's view; re-fetch before the
	// next availability answer even when a later pet failed.
	if len(results) > 0 && results[0].Err == nil {
		if err := s.refresher.Refresh(ctx); err != nil {
			slog.Warn("post-submit refresh failed", slog.Any("error", err))
		}
	}

	return results, failure
}
