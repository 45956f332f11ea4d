package rules

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// UUID accepts the canonical 36 character form only.
func UUID() shape.RuleFunc[string] {
	return New(func(v string) bool {
		_, ok := parseUUID(v)
		return ok
	}, "Value must be a valid UUID!")
}

// NonNilUUID accepts canonical UUIDs other than the nil UUID.
func NonNilUUID() shape.RuleFunc[string] {
	return New(func(v string) bool {
		id, ok := parseUUID(v)
		return ok && id != uuid.Nil
	}, "Value must be a non-nil UUID!")
}

func UUIDVersion(version uuid.Version) shape.RuleFunc[string] {
	return New(func(v string) bool {
		id, ok := parseUUID(v)
		return ok && id.Version() == version
	}, fmt.Sprintf("Value must be a version %d UUID!", version))
}

// parseUUID rejects the braced, urn and unhyphenated forms uuid.Parse allows.
func parseUUID(v string) (uuid.UUID, bool) {
	if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	return id, err == nil
}
