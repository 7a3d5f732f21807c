package mysql

import (
	"context"
	"database/sql"

	"bizreviews/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates both tables with their constraints if absent.
// businesses must exist before reviews because of fk_reviews_business.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBusinessesSQL); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, createReviewsSQL)
	return err
}

// ---- businesses ----

func (r *Repo) CreateBusiness(ctx context.Context, in domain.BusinessInput) (domain.Business, error) {
	res, err := r.db.ExecContext(ctx, insertBusinessSQL,
		in.OwnerID, in.Name, in.StreetAddress, in.City, in.State, in.ZipCode)
	if err != nil {
		return domain.Business{}, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Business{}, err
	}
	return r.GetBusiness(ctx, id)
}

func (r *Repo) GetBusiness(ctx context.Context, id int64) (domain.Business, error) {
	var b domain.Business
	err := r.db.QueryRowContext(ctx, selectBusinessSQL, id).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.StreetAddress, &b.City, &b.State, &b.ZipCode)
	if err == sql.ErrNoRows {
		return domain.Business{}, domain.ErrBusinessNotFound
	}
	if err != nil {
		return domain.Business{}, err
	}
	return b, nil
}

func (r *Repo) ListBusinesses(ctx context.Context, fetchLimit, offset int) ([]domain.Business, error) {
	rows, err := r.db.QueryContext(ctx, listBusinessesSQL, fetchLimit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

func (r *Repo) ListBusinessesByOwner(ctx context.Context, ownerID int64) ([]domain.Business, error) {
	rows, err := r.db.QueryContext(ctx, listBusinessesByOwnerSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

func (r *Repo) UpdateBusiness(ctx context.Context, id int64, in domain.BusinessInput) (domain.Business, error) {
	// Existence is checked up front: UPDATE reports zero affected rows both
	// for a missing id and for a no-op write, so rowcount alone can't tell
	// "not found" apart from "unchanged".
	if err := r.db.QueryRowContext(ctx, businessExistsSQL, id).Scan(new(int64)); err != nil {
		if err == sql.ErrNoRows {
			return domain.Business{}, domain.ErrBusinessNotFound
		}
		return domain.Business{}, err
	}
	_, err := r.db.ExecContext(ctx, updateBusinessSQL,
		in.OwnerID, in.Name, in.StreetAddress, in.City, in.State, in.ZipCode, id)
	if err != nil {
		return domain.Business{}, classify(err)
	}
	return r.GetBusiness(ctx, id)
}

func (r *Repo) DeleteBusiness(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteBusinessSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBusinessNotFound
	}
	// dependent reviews are gone too, via fk_reviews_business ON DELETE CASCADE
	return nil
}

func (r *Repo) BusinessExists(ctx context.Context, id int64) (bool, error) {
	err := r.db.QueryRowContext(ctx, businessExistsSQL, id).Scan(new(int64))
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanBusinesses(rows *sql.Rows) ([]domain.Business, error) {
	var out []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.StreetAddress, &b.City, &b.State, &b.ZipCode); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ---- reviews ----

func (r *Repo) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL,
		in.UserID, in.BusinessID, in.Stars, in.Text)
	if err != nil {
		return domain.Review{}, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	return r.GetReview(ctx, id)
}

func (r *Repo) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRowContext(ctx, selectReviewSQL, id).Scan(
		&rv.ID, &rv.UserID, &rv.BusinessID, &rv.Stars, &rv.Text)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrReviewNotFound
	}
	if err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

func (r *Repo) ListReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsByUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.BusinessID, &rv.Stars, &rv.Text); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateReview(ctx context.Context, id int64, upd domain.ReviewUpdate) (domain.Review, error) {
	if err := r.db.QueryRowContext(ctx, reviewExistsSQL, id).Scan(new(int64)); err != nil {
		if err == sql.ErrNoRows {
			return domain.Review{}, domain.ErrReviewNotFound
		}
		return domain.Review{}, err
	}
	var err error
	if upd.Text != nil {
		_, err = r.db.ExecContext(ctx, updateReviewSQL, upd.Stars, *upd.Text, id)
	} else {
		_, err = r.db.ExecContext(ctx, updateReviewStarsSQL, upd.Stars, id)
	}
	if err != nil {
		return domain.Review{}, classify(err)
	}
	return r.GetReview(ctx, id)
}

func (r *Repo) DeleteReview(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteReviewSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
