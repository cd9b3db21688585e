package domain

// Rate table: per-night prices for overnight rooms, flat per-service prices
// for daycare and grooming. Immutable configuration; never mutated at runtime.
var rateTable = map[string]map[WeightCategory]int{
	string(RoomDeluxe): {
		WeightSmall:  550,
		WeightMedium: 650,
		WeightLarge:  750,
		WeightXLarge: 850,
		WeightCat:    450,
	},
	string(RoomPremium): {
		WeightSmall:  650,
		WeightMedium: 750,
		WeightLarge:  850,
		WeightXLarge: 950,
		WeightCat:    550,
	},
	string(RoomExecutive): {
		WeightSmall:  850,
		WeightMedium: 950,
		WeightLarge:  1050,
		WeightXLarge: 1150,
		WeightCat:    750,
	},
	rateKeyDaycare: {
		WeightSmall:  350,
		WeightMedium: 400,
		WeightLarge:  450,
		WeightXLarge: 500,
		WeightCat:    300,
	},
	PackagePremiumGrooming: {
		WeightSmall:  500,
		WeightMedium: 550,
		WeightLarge:  600,
		WeightXLarge: 650,
		WeightCat:    450,
	},
	PackageBasicBath: {
		WeightSmall:  250,
		WeightMedium: 300,
		WeightLarge:  350,
		WeightXLarge: 400,
		WeightCat:    200,
	},
	PackageSpecialGrooming: {
		WeightSmall:  750,
		WeightMedium: 800,
		WeightLarge:  850,
		WeightXLarge: 900,
		WeightCat:    700,
	},
}

const rateKeyDaycare = "Daycare"

// rateKeyFor maps a service selection onto its rate-table key. Daycare has no
// sub-type; overnight and grooming key by room or package label.
func rateKeyFor(service ServiceType, roomOrPackage string) string {
	switch service {
	case ServiceOvernight:
		return string(NormalizeRoomType(roomOrPackage))
	case ServiceDaycare:
		return rateKeyDaycare
	case ServiceGrooming:
		return NormalizePackage(roomOrPackage)
	default:
		return ""
	}
}

// PriceFor computes the price for one pet's selection. Overnight stays
// multiply the per-night rate by nights (minimum one); daycare and grooming
// are flat per-service rates. Unknown room/package or weight keys yield 0,
// never an error: the caller treats 0 as "incomplete selection".
func PriceFor(service ServiceType, roomOrPackage string, weight WeightCategory, nights int) int {
	rates, ok := rateTable[rateKeyFor(service, roomOrPackage)]
	if !ok {
		return 0
	}
	rate, ok := rates[weight]
	if !ok {
		return 0
	}
	if service != ServiceOvernight {
		return rate
	}
	if nights < 1 {
		nights = 1
	}
	return rate * nights
}

// ReservationTotal sums the price of every pet's draft in a reservation. Each
// pet may have an independent room/package/weight selection.
func ReservationTotal(drafts []Draft) int {
	total := 0
	for _, draft := range drafts {
		total += draft.Price()
	}
	return total
}
