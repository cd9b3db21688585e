package domain

import (
	"time"

	"petStayWs/internal/shared/normalization"
)

// Pet holds the animal details attached to a booking.
type Pet struct {
	Name        string
	Type        PetType
	Breed       string
	Gender      string
	DateOfBirth string
}

// Owner holds the guest details attached to a booking.
type Owner struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Booking is the canonical reservation record. The authoritative list is
// replaced wholesale on every successful fetch; bookings are never deleted
// client-side (cancellation is a status change).
type Booking struct {
	ID              string
	ServiceType     ServiceType
	RoomType        RoomType
	PackageName     string
	WeightCategory  WeightCategory
	StartDate       time.Time
	EndDate         time.Time
	StartTime       string
	EndTime         string
	Status          BookingStatus
	Pet             Pet
	Owner           Owner
	ReferenceNumber string
}

// BookingList aggregates bookings with a total count.
type BookingList struct {
	Items []Booking
	Total int
}

// NormalizeBooking constructs a Booking from a loosely typed map. The API
// mixes snake_case and camelCase between endpoints, so every field resolves
// through an ordered alias list.
func NormalizeBooking(raw map[string]any) (Booking, bool) {
	id := normalization.Resolve(raw, "",
		normalization.Key("id"),
		normalization.Key("bookingId"),
		normalization.Key("booking_id"),
	)
	if id == "" {
		return Booking{}, false
	}

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
	petType := NormalizePetType(normalization.Resolve(raw, "",
		normalization.Key("petType"),
		normalization.Key("pet_type"),
		normalization.Nested("pet", "type"),
	))

	booking := Booking{
		ID:          id,
		ServiceType: NormalizeServiceType(serviceLabel),
		RoomType:    NormalizeRoomType(roomLabel),
		PackageName: NormalizePackage(packageLabel),
		WeightCategory: ResolveWeightCategory(normalization.Resolve(raw, "",
			normalization.Key("weightCategory"),
			normalization.Key("weight_category"),
			normalization.Key("weight"),
		), roomLabel, petType),
		StartTime: normalization.Resolve(raw, "",
			normalization.Key("startTime"),
			normalization.Key("start_time"),
		),
		EndTime: normalization.Resolve(raw, "",
			normalization.Key("endTime"),
			normalization.Key("end_time"),
		),
		Status: NormalizeBookingStatus(normalization.Resolve(raw, "",
			normalization.Key("status"),
			normalization.Key("state"),
		)),
		Pet: Pet{
			Name: normalization.Resolve(raw, "Pet",
				normalization.Key("petName"),
				normalization.Key("pet_name"),
				normalization.Nested("pet", "name"),
			),
			Type: petType,
			Breed: normalization.Resolve(raw, "",
				normalization.Key("breed"),
				normalization.Key("pet_breed"),
				normalization.Nested("pet", "breed"),
			),
			Gender: NormalizeGender(normalization.Resolve(raw, "",
				normalization.Key("gender"),
				normalization.Key("sex"),
				normalization.Nested("pet", "gender"),
			)),
			DateOfBirth: normalization.Resolve(raw, "",
				normalization.Key("dateOfBirth"),
				normalization.Key("date_of_birth"),
				normalization.Nested("pet", "dateOfBirth"),
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
		ReferenceNumber: normalization.Resolve(raw, "",
			normalization.Key("referenceNumber"),
			normalization.Key("reference_number"),
		),
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
	booking.StartDate = start
	if !endOK || end.Before(start) {
		end = start
	}
	booking.EndDate = end

	return booking, true
}

// BuildBookingList projects a response payload into a BookingList, tolerating
// the shapes the API is known to produce: a bare array, {data: [...]},
// {items: [...]} or {bookings: [...]}.
func BuildBookingList(payload any) (*BookingList, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		container := normalization.MapFromPayload(payload)
		if len(container) == 0 {
			return nil, false
		}
		rawItems = normalization.AsInterfaceSlice(container["items"])
		if len(rawItems) == 0 {
			rawItems = normalization.AsInterfaceSlice(container["bookings"])
		}
		if len(rawItems) == 0 {
			rawItems = normalization.AsInterfaceSlice(container["data"])
		}
	}
	if len(rawItems) == 0 {
		return nil, false
	}

	result := &BookingList{Items: make([]Booking, 0, len(rawItems))}
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if booking, ok := NormalizeBooking(rawMap); ok {
				result.Items = append(result.Items, booking)
			}
		}
	}
	if len(result.Items) == 0 {
		return nil, false
	}
	result.Total = len(result.Items)
	return result, true
}
