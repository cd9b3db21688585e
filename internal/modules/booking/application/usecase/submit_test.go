package usecase

import (
	"context"
	"errors"
	"testing"

	"petStayWs/internal/modules/booking/domain"
)

func newSubmitFixture(api *fakeAPI) (*SubmitService, *Store) {
	store := NewStore()
	store.ReplaceBookings(nil)
	store.ReplaceUnavailableDates(nil)
	availability := NewAvailabilityService(store)
	refresher := NewRefreshService(api, nil, store, nil)
	return NewSubmitService(api, availability, refresher), store
}

func overnightForm(petName string) map[string]any {
	return map[string]any{
		"serviceType":    "overnight",
		"roomType":       "Deluxe Room",
		"weightCategory": "Medium",
		"startDate":      "2025-06-01",
		"endDate":        "2025-06-03",
		"petName":        petName,
	}
}

func TestQuoteOvernightStay(t *testing.T) {
	service, _ := newSubmitFixture(&fakeAPI{})
	total, drafts := service.Quote([]map[string]any{overnightForm("Rex")})
	// Two nights at the Deluxe/Medium rate of 650.
	if total != 1300 {
		t.Fatalf("total = %d, want 1300", total)
	}
	if len(drafts) != 1 || drafts[0].Nights() != 2 {
		t.Fatalf("drafts = %+v", drafts)
	}
}

func TestQuoteIncompleteSelectionIsZero(t *testing.T) {
	service, _ := newSubmitFixture(&fakeAPI{})
	total, _ := service.Quote([]map[string]any{{"serviceType": "overnight"}})
	if total != 0 {
		t.Fatalf("incomplete selection priced at %d, want 0", total)
	}
}

func TestSubmitReservationSuccess(t *testing.T) {
	api := &fakeAPI{}
	service, _ := newSubmitFixture(api)

	results, err := service.SubmitReservation(context.Background(), []map[string]any{
		overnightForm("Rex"),
		overnightForm("Luna"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, result := range results {
		if result.Err != nil || result.Reference == "" {
			t.Fatalf("expected committed result, got %+v", result)
		}
	}
	// A successful submission re-fetches the authoritative view.
	if api.listCalls == 0 {
		t.Fatal("expected post-submit refresh")
	}
}

func TestSubmitReservationPartialFailure(t *testing.T) {
	api := &fakeAPI{failOn: 2}
	service, _ := newSubmitFixture(api)

	results, err := service.SubmitReservation(context.Background(), []map[string]any{
		overnightForm("Rex"),
		overnightForm("Luna"),
		overnightForm("Misu"),
	})
	if err == nil {
		t.Fatal("expected error from mid-loop failure")
	}
	// The loop stops at the first failure: pet one committed, pet two failed,
	// pet three never attempted.
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Err != nil || results[0].Reference == "" {
		t.Fatalf("pet one should be committed: %+v", results[0])
	}
	if results[1].Err == nil {
		t.Fatalf("pet two should have failed: %+v", results[1])
	}
	if len(api.created) != 2 {
		t.Fatalf("create calls = %d, want 2", len(api.created))
	}
	// The committed submission still triggers a refresh.
	if api.listCalls == 0 {
		t.Fatal("expected refresh after partial commit")
	}
}

func TestSubmitReservationValidatesBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	service, _ := newSubmitFixture(api)

	_, err := service.SubmitReservation(context.Background(), []map[string]any{
		{"serviceType": "overnight", "startDate": "2025-06-01"}, // no room
	})
	if !errors.Is(err, domain.ErrDraftInvalid) {
		t.Fatalf("expected ErrDraftInvalid, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatal("validation failure must not reach the network")
	}
}

func TestSubmitReservationBlockedDateRejected(t *testing.T) {
	api := &fakeAPI{}
	service, store := newSubmitFixture(api)
	store.Block(day(t, "2025-06-01"))

	_, err := service.SubmitReservation(context.Background(), []map[string]any{overnightForm("Rex")})
	if !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatal("blocked date must not reach the network")
	}
}

func TestSubmitReservationEmpty(t *testing.T) {
	service, _ := newSubmitFixture(&fakeAPI{})
	if _, err := service.SubmitReservation(context.Background(), nil); !errors.Is(err, domain.ErrDraftInvalid) {
		t.Fatalf("expected ErrDraftInvalid for empty reservation, got %v", err)
	}
}
