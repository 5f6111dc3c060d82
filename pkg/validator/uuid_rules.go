package validator

import (
	"github.com/google/uuid"
)

// UUID checks for a canonical 36 character UUID string. The nil UUID is
// accepted unless NonNil is used.
func UUID(msg ...string) Rule {
	return Rule{
		Name:    "uuid",
		Message: message("The value ':value' is not a valid UUID", msg),
		Check: func(value, _ any) bool {
			_, ok := parseUUID(value)
			return ok
		},
	}
}

// NonNilUUID is UUID that also rejects 00000000-0000-0000-0000-000000000000.
func NonNilUUID(msg ...string) Rule {
	return Rule{
		Name:    "nonNilUUID",
		Message: message("The value ':value' is not a valid non-nil UUID", msg),
		Check: func(value, _ any) bool {
			id, ok := parseUUID(value)
			return ok && id != uuid.Nil
		},
	}
}

func parseUUID(value any) (uuid.UUID, bool) {
	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	s, ok := asString(value)
	if !ok {
		return uuid.Nil, false
	}

	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
