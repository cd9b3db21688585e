package domain

import "strings"

// ServiceType is the top-level category of a booking.
type ServiceType string

const (
	ServiceUnknown   ServiceType = ""
	ServiceOvernight ServiceType = "overnight"
	ServiceDaycare   ServiceType = "daycare"
	ServiceGrooming  ServiceType = "grooming"
)

var serviceAliases = map[string]ServiceType{
	"overnight": ServiceOvernight,
	"boarding":  ServiceOvernight,
	"stay":      ServiceOvernight,
	"daycare":   ServiceDaycare,
	"day-care":  ServiceDaycare,
	"day care":  ServiceDaycare,
	"grooming":  ServiceGrooming,
	"groom":     ServiceGrooming,
}

// NormalizeServiceType maps loose service labels onto the canonical enum.
func NormalizeServiceType(raw string) ServiceType {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if service, ok := serviceAliases[trimmed]; ok {
		return service
	}
	return ServiceUnknown
}

// RoomType identifies an overnight room category.
type RoomType string

const (
	RoomUnknown   RoomType = ""
	RoomDeluxe    RoomType = "Deluxe Room"
	RoomPremium   RoomType = "Premium Room"
	RoomExecutive RoomType = "Executive Room"
)

// roomAliases is a fixed finite mapping: unexpected inputs resolve to
// RoomUnknown instead of silently matching the wrong bucket.
var roomAliases = map[string]RoomType{
	"deluxe":         RoomDeluxe,
	"deluxe room":    RoomDeluxe,
	"premium":        RoomPremium,
	"premium room":   RoomPremium,
	"executive":      RoomExecutive,
	"executive room": RoomExecutive,
}

// NormalizeRoomType maps room labels like "Premium Room", "premium" or
// "PREMIUM" onto the canonical room type.
func NormalizeRoomType(raw string) RoomType {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if room, ok := roomAliases[trimmed]; ok {
		return room
	}
	// Room strings sometimes carry a weight suffix, e.g. "Deluxe Room (Small)".
	if idx := strings.IndexAny(trimmed, "(-"); idx > 0 {
		if room, ok := roomAliases[strings.TrimSpace(trimmed[:idx])]; ok {
			return room
		}
	}
	return RoomUnknown
}

// Grooming package labels are compared by exact normalized string.
const (
	PackagePremiumGrooming = "Premium Grooming"
	PackageBasicBath       = "Basic Bath & Dry"
	PackageSpecialGrooming = "Special Grooming Package"
)

var packageAliases = map[string]string{
	"premium grooming":         PackagePremiumGrooming,
	"basic bath & dry":         PackageBasicBath,
	"basic bath and dry":       PackageBasicBath,
	"basic bath":               PackageBasicBath,
	"special grooming package": PackageSpecialGrooming,
	"special grooming":         PackageSpecialGrooming,
}

// NormalizePackage maps grooming package labels onto their canonical form,
// returning "" for unrecognized input.
func NormalizePackage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if pkg, ok := packageAliases[trimmed]; ok {
		return pkg
	}
	return ""
}

// Numeric service identifiers are an API contract value, not a business
// concept: the backend keys services by these ids and every submission must
// carry one regardless of which form produced it.
var groomingServiceIDs = map[string]int{
	PackagePremiumGrooming: 2,
	PackageBasicBath:       3,
	PackageSpecialGrooming: 6,
}

const (
	serviceIDOvernight       = 1
	serviceIDDaycare         = 4
	serviceIDGroomingDefault = 5
)

// ServiceIDFor computes the numeric service id the API expects for the given
// canonical service type and, for grooming, package name.
func ServiceIDFor(service ServiceType, packageName string) int {
	switch service {
	case ServiceOvernight:
		return serviceIDOvernight
	case ServiceDaycare:
		return serviceIDDaycare
	case ServiceGrooming:
		if id, ok := groomingServiceIDs[NormalizePackage(packageName)]; ok {
			return id
		}
		return serviceIDGroomingDefault
	default:
		return serviceIDGroomingDefault
	}
}
