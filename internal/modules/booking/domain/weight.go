package domain

import "strings"

// WeightCategory is the canonical pet-size bucket used for pricing.
type WeightCategory string

const (
	WeightUnknown WeightCategory = ""
	WeightSmall   WeightCategory = "Small"
	WeightMedium  WeightCategory = "Medium"
	WeightLarge   WeightCategory = "Large"
	WeightXLarge  WeightCategory = "X-Large"
	WeightCat     WeightCategory = "Cat"
)

// NormalizeWeightCategory collapses free-text weight labels onto one of the
// five canonical categories via keyword matching. "Extra-Large (40+ KG)",
// "xlarge", "x-large" and "XL" all resolve to X-Large. Returns WeightUnknown
// when no keyword matches.
func NormalizeWeightCategory(raw string) WeightCategory {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return WeightUnknown
	}
	compact := strings.NewReplacer("-", "", "_", "", " ", "").Replace(lowered)
	switch {
	// X-Large must be checked before Large: "xlarge" contains "large".
	case strings.Contains(compact, "xlarge"), strings.Contains(compact, "extralarge"), compact == "xl":
		return WeightXLarge
	case strings.Contains(lowered, "small"):
		return WeightSmall
	case strings.Contains(lowered, "medium"):
		return WeightMedium
	case strings.Contains(lowered, "large"):
		return WeightLarge
	case strings.Contains(lowered, "cat"):
		return WeightCat
	default:
		return WeightUnknown
	}
}

// PetType is collapsed to exactly Dog or Cat.
type PetType string

const (
	PetDog PetType = "Dog"
	PetCat PetType = "Cat"
)

// NormalizePetType collapses pet type labels by substring match, defaulting
// to Dog.
func NormalizePetType(raw string) PetType {
	if strings.Contains(strings.ToLower(raw), "cat") {
		return PetCat
	}
	return PetDog
}

// NormalizeGender collapses gender labels to exactly Male or Female,
// defaulting to Male.
func NormalizeGender(raw string) string {
	if strings.Contains(strings.ToLower(raw), "female") {
		return "Female"
	}
	return "Male"
}

// DefaultWeightCategory returns the type-appropriate fallback bucket: Cat for
// feline pets, Medium otherwise.
func DefaultWeightCategory(petType PetType) WeightCategory {
	if petType == PetCat {
		return WeightCat
	}
	return WeightMedium
}

// ResolveWeightCategory applies the full resolution order: explicit category,
// then inference from the room label (forms encode the bucket in strings like
// "Deluxe Room (Small)"), finally the pet-type default. The result is always
// one of the five canonical values, never free text.
func ResolveWeightCategory(explicit, roomLabel string, petType PetType) WeightCategory {
	if weight := NormalizeWeightCategory(explicit); weight != WeightUnknown {
		return weight
	}
	if weight := NormalizeWeightCategory(roomLabel); weight != WeightUnknown {
		return weight
	}
	return DefaultWeightCategory(petType)
}
