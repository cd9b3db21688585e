package domain

import "testing"

func TestNormalizeServiceType(t *testing.T) {
	cases := map[string]ServiceType{
		"Overnight": ServiceOvernight,
		"boarding":  ServiceOvernight,
		"Day Care":  ServiceDaycare,
		"daycare":   ServiceDaycare,
		"GROOMING":  ServiceGrooming,
		"groom":     ServiceGrooming,
		"taxi":      ServiceUnknown,
		"":          ServiceUnknown,
	}
	for input, want := range cases {
		if got := NormalizeServiceType(input); got != want {
			t.Fatalf("NormalizeServiceType(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeRoomType(t *testing.T) {
	cases := map[string]RoomType{
		"Deluxe Room":          RoomDeluxe,
		"deluxe":               RoomDeluxe,
		"PREMIUM":              RoomPremium,
		"Premium Room":         RoomPremium,
		"executive room":       RoomExecutive,
		"Deluxe Room (Small)":  RoomDeluxe,
		"Premium Room - Large": RoomPremium,
		"Penthouse":            RoomUnknown,
		"":                     RoomUnknown,
	}
	for input, want := range cases {
		if got := NormalizeRoomType(input); got != want {
			t.Fatalf("NormalizeRoomType(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizePackage(t *testing.T) {
	cases := map[string]string{
		"Premium Grooming":         PackagePremiumGrooming,
		"basic bath & dry":         PackageBasicBath,
		"Basic Bath and Dry":       PackageBasicBath,
		"special grooming":         PackageSpecialGrooming,
		"Special Grooming Package": PackageSpecialGrooming,
		"mystery spa":              "",
	}
	for input, want := range cases {
		if got := NormalizePackage(input); got != want {
			t.Fatalf("NormalizePackage(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestServiceIDFor(t *testing.T) {
	if id := ServiceIDFor(ServiceOvernight, ""); id != 1 {
		t.Fatalf("overnight service id = %d, want 1", id)
	}
	if id := ServiceIDFor(ServiceDaycare, ""); id != 4 {
		t.Fatalf("daycare service id = %d, want 4", id)
	}
	grooming := map[string]int{
		PackagePremiumGrooming: 2,
		PackageBasicBath:       3,
		PackageSpecialGrooming: 6,
		"unrecognized":         5,
	}
	for pkg, want := range grooming {
		if id := ServiceIDFor(ServiceGrooming, pkg); id != want {
			t.Fatalf("grooming %q service id = %d, want %d", pkg, id, want)
		}
	}
}
