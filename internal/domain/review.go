package domain

// Review is a row in the reviews table. The store enforces stars BETWEEN 0
// AND 5 and at most one review per (user_id, business_id) pair.
type Review struct {
	ID         int64
	UserID     int64
	BusinessID int64
	Stars      int64
	Text       string
}

// ReviewInput carries the writable fields of a new review. Text defaults to
// the empty string when the client omits it.
type ReviewInput struct {
	UserID     int64
	BusinessID int64
	Stars      int64
	Text       string
}

// ReviewUpdate mutates an existing review. Stars is always overwritten;
// Text is overwritten only when non-nil, otherwise the stored text stays.
type ReviewUpdate struct {
	Stars int64
	Text  *string
}
