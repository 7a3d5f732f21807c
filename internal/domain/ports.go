package domain

import "context"

// Repository is the store port. Creates and updates re-read the row after the
// write and return the fresh entity; deletes report ErrBusinessNotFound /
// ErrReviewNotFound when no row matched. Write failures caused by declared
// constraints come back as *ConstraintError.
type Repository interface {
	// businesses
	CreateBusiness(ctx context.Context, in BusinessInput) (Business, error)
	GetBusiness(ctx context.Context, id int64) (Business, error)
	// ListBusinesses returns up to fetchLimit rows ordered by ascending id,
	// starting at offset. Callers pass limit+1 to probe for a further page.
	ListBusinesses(ctx context.Context, fetchLimit, offset int) ([]Business, error)
	ListBusinessesByOwner(ctx context.Context, ownerID int64) ([]Business, error)
	UpdateBusiness(ctx context.Context, id int64, in BusinessInput) (Business, error)
	DeleteBusiness(ctx context.Context, id int64) error
	BusinessExists(ctx context.Context, id int64) (bool, error)

	// reviews
	CreateReview(ctx context.Context, in ReviewInput) (Review, error)
	GetReview(ctx context.Context, id int64) (Review, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]Review, error)
	UpdateReview(ctx context.Context, id int64, upd ReviewUpdate) (Review, error)
	DeleteReview(ctx context.Context, id int64) error
}
