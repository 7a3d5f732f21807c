package app

import (
	"context"

	"bizreviews/internal/domain"
)

// DefaultPageLimit applies when limit or offset is absent from the query.
const DefaultPageLimit = 3

// Service orchestrates handlers over the repository port. It owns the
// pagination probe and the explicit business-existence check on review
// creation; everything else is a single pass-through round trip.
type Service struct {
	repo domain.Repository
}

func NewService(r domain.Repository) *Service { return &Service{repo: r} }

// BusinessPage is one page of the businesses collection. HasNext is set when
// the store held more than Limit rows past Offset.
type BusinessPage struct {
	Items   []domain.Business
	Limit   int
	Offset  int
	HasNext bool
}

func (s *Service) CreateBusiness(ctx context.Context, in domain.BusinessInput) (domain.Business, error) {
	return s.repo.CreateBusiness(ctx, in)
}

func (s *Service) GetBusiness(ctx context.Context, id int64) (domain.Business, error) {
	return s.repo.GetBusiness(ctx, id)
}

// ListBusinesses clamps negative paging values to zero and fetches limit+1
// rows so a further page is detected without a second count query.
func (s *Service) ListBusinesses(ctx context.Context, limit, offset int) (BusinessPage, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.repo.ListBusinesses(ctx, limit+1, offset)
	if err != nil {
		return BusinessPage{}, err
	}
	page := BusinessPage{Limit: limit, Offset: offset}
	if len(rows) > limit {
		page.HasNext = true
		rows = rows[:limit]
	}
	page.Items = rows
	return page, nil
}

func (s *Service) ListBusinessesByOwner(ctx context.Context, ownerID int64) ([]domain.Business, error) {
	return s.repo.ListBusinessesByOwner(ctx, ownerID)
}

func (s *Service) UpdateBusiness(ctx context.Context, id int64, in domain.BusinessInput) (domain.Business, error) {
	return s.repo.UpdateBusiness(ctx, id, in)
}

func (s *Service) DeleteBusiness(ctx context.Context, id int64) error {
	return s.repo.DeleteBusiness(ctx, id)
}

// CreateReview verifies the referenced business first so a missing business
// surfaces as ErrBusinessNotFound rather than as the foreign-key constraint
// firing on insert; the two must stay distinguishable to clients.
func (s *Service) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	ok, err := s.repo.BusinessExists(ctx, in.BusinessID)
	if err != nil {
		return domain.Review{}, err
	}
	if !ok {
		return domain.Review{}, domain.ErrBusinessNotFound
	}
	return s.repo.CreateReview(ctx, in)
}

func (s *Service) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	return s.repo.GetReview(ctx, id)
}

func (s *Service) ListReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.repo.ListReviewsByUser(ctx, userID)
}

func (s *Service) UpdateReview(ctx context.Context, id int64, upd domain.ReviewUpdate) (domain.Review, error) {
	return s.repo.UpdateReview(ctx, id, upd)
}

func (s *Service) DeleteReview(ctx context.Context, id int64) error {
	return s.repo.DeleteReview(ctx, id)
}
