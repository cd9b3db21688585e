package normalization

// Accessor extracts one candidate value for a logical field from a loose
// submission map. Returning "" means the accessor found nothing and the next
// one in priority order is consulted.
type Accessor func(map[string]any) string

// Key reads a flat field.
func Key(name string) Accessor {
	return func(raw map[string]any) string {
		return AsString(raw[name])
	}
}

// Nested reads a field from an object stored under objectKey. Single-element
// arrays in place of the object are unwrapped.
func Nested(objectKey, field string) Accessor {
	return func(raw map[string]any) string {
		if entity := NestedMap(raw, objectKey); entity != nil {
			return AsString(entity[field])
		}
		return ""
	}
}

// Resolve evaluates accessors in priority order and returns the first
// non-empty value, falling back to the supplied default. The accessor list is
// the single place a field's alias order lives; callers never chain lookups
// inline.
func Resolve(raw map[string]any, fallback string, accessors ...Accessor) string {
	for _, accessor := range accessors {
		if accessor == nil {
			continue
		}
		if value := accessor(raw); value != "" {
			return value
		}
	}
	return fallback
}
