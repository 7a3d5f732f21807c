package app

import (
	"fmt"
	"strconv"

	"bizreviews/internal/domain"
)

// The representation layer: store rows shaped into the public JSON form,
// with the surrogate key renamed to "id" and absolute hyperlinks attached.
// No I/O happens here; base is the externally visible URL prefix.

type BusinessRepr struct {
	ID            int64  `json:"id"`
	OwnerID       int64  `json:"owner_id"`
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       int    `json:"zip_code"`
	Self          string `json:"self"`
}

type ReviewRepr struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Business   string `json:"business"`
	Stars      int64  `json:"stars"`
	ReviewText string `json:"review_text"`
	Self       string `json:"self"`
}

func BusinessURL(base string, id int64) string {
	return fmt.Sprintf("%s/businesses/%d", base, id)
}

func ReviewURL(base string, id int64) string {
	return fmt.Sprintf("%s/reviews/%d", base, id)
}

// NextPageURL builds the businesses collection link with offset advanced by
// one page.
func NextPageURL(base string, limit, offset int) string {
	return fmt.Sprintf("%s/businesses?limit=%d&offset=%d", base, limit, offset+limit)
}

func MapBusiness(base string, b domain.Business) BusinessRepr {
	// zip_code is CHAR(5) in the store but an integer on the wire
	zip, _ := strconv.Atoi(b.ZipCode)
	return BusinessRepr{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Name:          b.Name,
		StreetAddress: b.StreetAddress,
		City:          b.City,
		State:         b.State,
		ZipCode:       zip,
		Self:          BusinessURL(base, b.ID),
	}
}

func MapBusinesses(base string, bs []domain.Business) []BusinessRepr {
	out := make([]BusinessRepr, 0, len(bs))
	for _, b := range bs {
		out = append(out, MapBusiness(base, b))
	}
	return out
}

func MapReview(base string, rv domain.Review) ReviewRepr {
	return ReviewRepr{
		ID:         rv.ID,
		UserID:     rv.UserID,
		Business:   BusinessURL(base, rv.BusinessID),
		Stars:      rv.Stars,
		ReviewText: rv.Text,
		Self:       ReviewURL(base, rv.ID),
	}
}

func MapReviews(base string, rvs []domain.Review) []ReviewRepr {
	out := make([]ReviewRepr, 0, len(rvs))
	for _, rv := range rvs {
		out = append(out, MapReview(base, rv))
	}
	return out
}
