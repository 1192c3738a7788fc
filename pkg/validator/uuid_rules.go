package validator

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// uuidRule accepts the canonical 36-character form and rejects the nil UUID
// when the param "nonNil" is given.
func uuidRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}

	var id uuid.UUID
	switch v := in.Value.(type) {
	case uuid.UUID:
		id = v
	case string:
		// Fast rejection: check length and hyphen positions before parsing
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return invalidUUID()
		}
		parsed, err := uuid.Parse(v)
		if err != nil {
			return invalidUUID()
		}
		id = parsed
	default:
		return invalidUUID()
	}

	for _, p := range stringParams(in.Params) {
		if strings.EqualFold(p, "nonNil") && id == uuid.Nil {
			return Fail("UUID cannot be nil").WithTranslation("validation.uuid_not_nil", nil)
		}
	}
	return Pass()
}

func invalidUUID() Outcome {
	return Fail("must be a valid UUID").WithTranslation("validation.uuid", nil)
}
