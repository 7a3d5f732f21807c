package app

// Required request fields, in the order they are reported when missing.
var (
	RequiredBusinessFields = []string{"owner_id", "name", "street_address", "city", "state", "zip_code"}
	RequiredReviewFields   = []string{"user_id", "business_id", "stars"}
)

// MissingField returns the first name in required that is absent from body,
// or "" when all are present. Presence only: types, ranges and referential
// integrity are left to the store and its constraints.
func MissingField(body map[string]any, required []string) string {
	for _, f := range required {
		if _, ok := body[f]; !ok {
			return f
		}
	}
	return ""
}
