package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"petStayWs/internal/shared/normalization"
)

// CanonicalPayload is the fully-normalized, API-ready representation of one
// pet's booking submission. Every field the API requires is present with a
// deterministic value; both casings are carried because the backend's
// endpoints disagree on naming.
type CanonicalPayload map[string]any

// Draft is one pet's worth of booking data assembled from form state before
// submission: same shape as a Booking but without id, reference number or
// status.
type Draft struct {
	Service   ServiceType
	RoomLabel string
	Package   string
	Weight    WeightCategory
	Start     time.Time
	End       time.Time
	StartTime string
	EndTime   string
	Pet       Pet
	Owner     Owner
}

// ErrDraftInvalid marks a submission that must be rejected before any network
// call.
var ErrDraftInvalid = errors.New("invalid booking draft")

// BuildDraft resolves a loosely-typed form submission into a Draft. Each
// logical field follows the same priority order: flat camelCase field, flat
// snake_case field, nested pet/petDetails or ownerDetails object, default.
func BuildDraft(raw map[string]any) Draft {
	petType := NormalizePetType(normalization.Resolve(raw, "",
		normalization.Key("petType"),
		normalization.Key("pet_type"),
		normalization.Nested("pet", "type"),
		normalization.Nested("petDetails", "type"),
	))

	serviceLabel := normalization.Resolve(raw, "",
		normalization.Key("serviceType"),
		normalization.Key("service_type"),
		normalization.Key("service"),
	)
	roomLabel := normalization.Resolve(raw, "",
		normalization.Key("roomType"),
		normalization.Key("room_type"),
		normalization.Key("room"),
	)
	packageLabel := normalization.Resolve(raw, "",
		normalization.Key("packageName"),
		normalization.Key("package_name"),
		normalization.Key("package"),
	)

	draft := Draft{
		Service:   NormalizeServiceType(serviceLabel),
		RoomLabel: roomLabel,
		Package:   NormalizePackage(packageLabel),
		Weight: ResolveWeightCategory(normalization.Resolve(raw, "",
			normalization.Key("weightCategory"),
			normalization.Key("weight_category"),
			normalization.Key("weight"),
		), roomLabel, petType),
		StartTime: ConvertTo24Hour(normalization.Resolve(raw, "",
			normalization.Key("startTime"),
			normalization.Key("start_time"),
			normalization.Key("checkInTime"),
			normalization.Key("check_in_time"),
		)),
		EndTime: ConvertTo24Hour(normalization.Resolve(raw, "",
			normalization.Key("endTime"),
			normalization.Key("end_time"),
			normalization.Key("checkOutTime"),
			normalization.Key("check_out_time"),
		)),
		Pet: Pet{
			Name: normalization.Resolve(raw, "Pet",
				normalization.Key("petName"),
				normalization.Key("pet_name"),
				normalization.Nested("pet", "name"),
				normalization.Nested("petDetails", "name"),
			),
			Type: petType,
			Breed: normalization.Resolve(raw, "",
				normalization.Key("breed"),
				normalization.Key("pet_breed"),
				normalization.Nested("pet", "breed"),
				normalization.Nested("petDetails", "breed"),
			),
			Gender: NormalizeGender(normalization.Resolve(raw, "",
				normalization.Key("gender"),
				normalization.Key("sex"),
				normalization.Nested("pet", "gender"),
				normalization.Nested("petDetails", "gender"),
			)),
			DateOfBirth: normalization.Resolve(raw, "",
				normalization.Key("dateOfBirth"),
				normalization.Key("date_of_birth"),
				normalization.Nested("pet", "dateOfBirth"),
				normalization.Nested("petDetails", "dateOfBirth"),
			),
		},
		Owner: Owner{
			Name: normalization.Resolve(raw, "",
				normalization.Key("ownerName"),
				normalization.Key("owner_name"),
				normalization.Nested("ownerDetails", "name"),
			),
			Phone: normalization.Resolve(raw, "",
				normalization.Key("ownerPhone"),
				normalization.Key("owner_phone"),
				normalization.Nested("ownerDetails", "phone"),
			),
			Email: normalization.Resolve(raw, "",
				normalization.Key("ownerEmail"),
				normalization.Key("owner_email"),
				normalization.Nested("ownerDetails", "email"),
			),
			Address: normalization.Resolve(raw, "",
				normalization.Key("ownerAddress"),
				normalization.Key("owner_address"),
				normalization.Nested("ownerDetails", "address"),
			),
		},
	}

	start, _ := NormalizeDate(normalization.Resolve(raw, "",
		normalization.Key("startDate"),
		normalization.Key("start_date"),
		normalization.Key("bookingDate"),
		normalization.Key("booking_date"),
	))
	end, endOK := NormalizeDate(normalization.Resolve(raw, "",
		normalization.Key("endDate"),
		normalization.Key("end_date"),
	))
	draft.Start = start
	// end_date must always be populated: downstream storage disallows null
	// end dates even for single-day services.
	if !endOK {
		end = start
	}
	draft.End = end

	return draft
}

// Validate reports the first client-side reason this draft cannot be
// submitted. These checks never reach the network.
func (d Draft) Validate() error {
	if d.Service == ServiceUnknown {
		return fmt.Errorf("%w: missing service type", ErrDraftInvalid)
	}
	if d.Start.IsZero() {
		return fmt.Errorf("%w: missing booking date", ErrDraftInvalid)
	}
	if !d.End.IsZero() && d.End.Before(d.Start) {
		return fmt.Errorf("%w: check-out before check-in", ErrDraftInvalid)
	}
	if d.Service == ServiceOvernight && NormalizeRoomType(d.RoomLabel) == RoomUnknown {
		return fmt.Errorf("%w: missing room type", ErrDraftInvalid)
	}
	if d.Service == ServiceGrooming && d.Package == "" {
		return fmt.Errorf("%w: missing grooming package", ErrDraftInvalid)
	}
	return nil
}

// Nights returns the stay length for pricing; non-overnight services always
// report one.
func (d Draft) Nights() int {
	if d.Service != ServiceOvernight {
		return 1
	}
	return NightsBetween(d.Start, d.End)
}

// Price computes this draft's total from the rate table.
func (d Draft) Price() int {
	key := d.RoomLabel
	if d.Service == ServiceGrooming {
		key = d.Package
	}
	return PriceFor(d.Service, key, d.Weight, d.Nights())
}

// Selection returns the capacity bucket this draft occupies.
func (d Draft) Selection() Selection {
	return Selection{
		Service: d.Service,
		Room:    NormalizeRoomType(d.RoomLabel),
		Package: d.Package,
	}
}

// Payload produces the canonical API submission for this draft. No required
// field is ever absent; optional fields default to empty strings rather than
// null so the backend's validators see consistent types.
func (d Draft) Payload() CanonicalPayload {
	room := string(NormalizeRoomType(d.RoomLabel))
	if d.Service == ServiceGrooming {
		room = d.Package
	}
	startDate := FormatAPIDate(d.Start)
	endDate := FormatAPIDate(d.End)
	if endDate == "" {
		endDate = startDate
	}
	firstName, lastName := splitOwnerName(d.Owner.Name)

	return CanonicalPayload{
		"service_id":   ServiceIDFor(d.Service, d.Package),
		"serviceId":    ServiceIDFor(d.Service, d.Package),
		"service_type": string(d.Service),
		"serviceType":  string(d.Service),
		"room_type":    room,
		"roomType":     room,
		"package_name": d.Package,
		"packageName":  d.Package,

		"weight_category": string(d.Weight),
		"weightCategory":  string(d.Weight),

		"booking_date": startDate,
		"bookingDate":  startDate,
		"start_date":   startDate,
		"startDate":    startDate,
		"end_date":     endDate,
		"endDate":      endDate,
		"start_time":   d.StartTime,
		"startTime":    d.StartTime,
		"end_time":     d.EndTime,
		"endTime":      d.EndTime,

		"pet_name":      d.Pet.Name,
		"petName":       d.Pet.Name,
		"pet_type":      string(d.Pet.Type),
		"petType":       string(d.Pet.Type),
		"breed":         d.Pet.Breed,
		"gender":        d.Pet.Gender,
		"date_of_birth": d.Pet.DateOfBirth,
		"dateOfBirth":   d.Pet.DateOfBirth,

		"owner_name":       d.Owner.Name,
		"ownerName":        d.Owner.Name,
		"owner_first_name": firstName,
		"owner_last_name":  lastName,
		"owner_phone":      d.Owner.Phone,
		"ownerPhone":       d.Owner.Phone,
		"owner_email":      d.Owner.Email,
		"ownerEmail":       d.Owner.Email,
		"owner_address":    d.Owner.Address,
		"ownerAddress":     d.Owner.Address,
	}
}

// splitOwnerName synthesizes first/last name fields by splitting the full
// name on the first space.
func splitOwnerName(full string) (string, string) {
	trimmed := strings.TrimSpace(full)
	if trimmed == "" {
		return "", ""
	}
	if idx := strings.Index(trimmed, " "); idx > 0 {
		return trimmed[:idx], strings.TrimSpace(trimmed[idx+1:])
	}
	return trimmed, ""
}
