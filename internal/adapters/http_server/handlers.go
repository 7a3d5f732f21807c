package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bizreviews/internal/app"
	"bizreviews/internal/domain"
)

// Handlers owns the API surface. PublicBase, when set, is the URL prefix for
// hypermedia links; otherwise links are derived from the request host over
// https.
type Handlers struct {
	Svc        *app.Service
	PublicBase string
}

// Fixed response bodies. Clients match on these exact strings.
const (
	msgMissingAttrs    = "The request body is missing at least one of the required attributes"
	msgBusinessNF      = "No business with this business_id exists"
	msgReviewNF        = "No review with this review_id exists"
	msgDuplicateReview = "You have already submitted a review for this business. " +
		"You can update your previous review, or delete it and submit a new review"
	msgInvalidReview  = "Invalid review data"
	msgCreateBusiness = "Unable to create business"
	msgCreateReview   = "Unable to create review"
	msgInternal       = "Internal server error"
	msgNotFound       = "Not found"

	indexText = "Please access either the /businesses or /reviews endpoint."
)

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.index)
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/businesses", h.createBusiness)
	s.mux.Get("/businesses", h.listBusinesses)
	s.mux.Get("/businesses/{id}", h.getBusiness)
	s.mux.Put("/businesses/{id}", h.updateBusiness)
	s.mux.Delete("/businesses/{id}", h.deleteBusiness)
	s.mux.Get("/owners/{ownerID}/businesses", h.listBusinessesByOwner)

	s.mux.Post("/reviews", h.createReview)
	s.mux.Get("/reviews/{id}", h.getReview)
	s.mux.Put("/reviews/{id}", h.updateReview)
	s.mux.Delete("/reviews/{id}", h.deleteReview)
	s.mux.Get("/users/{userID}/reviews", h.listReviewsByUser)
}

// ---- shared helpers ----

type errBody struct {
	Error string `json:"Error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errBody{Error: msg})
}

// baseURL is the prefix for all hypermedia links in a response.
func (h *Handlers) baseURL(r *http.Request) string {
	if h.PublicBase != "" {
		return strings.TrimRight(h.PublicBase, "/")
	}
	return "https://" + r.Host
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func decodeBody(r *http.Request) (map[string]any, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		return nil, false
	}
	return body, true
}

// asInt64 coerces a decoded JSON value to int64. Numeric strings are
// accepted the way the store would accept them.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

// asString renders a decoded JSON scalar as the string the store will hold.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	}
	return ""
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexText))
}

// ---- businesses ----

func businessInputFromBody(body map[string]any) (domain.BusinessInput, bool) {
	ownerID, ok := asInt64(body["owner_id"])
	if !ok {
		return domain.BusinessInput{}, false
	}
	return domain.BusinessInput{
		OwnerID:       ownerID,
		Name:          asString(body["name"]),
		StreetAddress: asString(body["street_address"]),
		City:          asString(body["city"]),
		State:         asString(body["state"]),
		ZipCode:       asString(body["zip_code"]),
	}, true
}

func (h *Handlers) createBusiness(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	if missing := app.MissingField(body, app.RequiredBusinessFields); missing != "" {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	in, ok := businessInputFromBody(body)
	if !ok {
		writeErr(w, http.StatusInternalServerError, msgCreateBusiness)
		return
	}
	b, err := h.Svc.CreateBusiness(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("create business failed")
		writeErr(w, http.StatusInternalServerError, msgCreateBusiness)
		return
	}
	writeJSON(w, http.StatusCreated, app.MapBusiness(h.baseURL(r), b))
}

type businessPageBody struct {
	Entries []app.BusinessRepr `json:"entries"`
	Next    string             `json:"next,omitempty"`
}

func (h *Handlers) listBusinesses(w http.ResponseWriter, r *http.Request) {
	// Both params must be present and numeric, otherwise the first page is
	// served with the default size.
	limit, offset := app.DefaultPageLimit, 0
	l, lerr := strconv.Atoi(r.URL.Query().Get("limit"))
	o, oerr := strconv.Atoi(r.URL.Query().Get("offset"))
	if lerr == nil && oerr == nil {
		limit, offset = l, o
	}

	page, err := h.Svc.ListBusinesses(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list businesses failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}

	base := h.baseURL(r)
	body := businessPageBody{Entries: app.MapBusinesses(base, page.Items)}
	if page.HasNext {
		body.Next = app.NextPageURL(base, page.Limit, page.Offset)
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handlers) getBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	b, err := h.Svc.GetBusiness(r.Context(), id)
	if err == domain.ErrBusinessNotFound {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("get business failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, app.MapBusiness(h.baseURL(r), b))
}

func (h *Handlers) listBusinessesByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(r, "ownerID")
	if !ok {
		writeErr(w, http.StatusNotFound, msgNotFound)
		return
	}
	bs, err := h.Svc.ListBusinessesByOwner(r.Context(), ownerID)
	if err != nil {
		log.Error().Err(err).Int64("owner_id", ownerID).Msg("list businesses by owner failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	// bare array, not paginated
	writeJSON(w, http.StatusOK, app.MapBusinesses(h.baseURL(r), bs))
}

func (h *Handlers) updateBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	body, ok := decodeBody(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	if missing := app.MissingField(body, app.RequiredBusinessFields); missing != "" {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	in, ok := businessInputFromBody(body)
	if !ok {
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	b, err := h.Svc.UpdateBusiness(r.Context(), id, in)
	if err == domain.ErrBusinessNotFound {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("update business failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, app.MapBusiness(h.baseURL(r), b))
}

func (h *Handlers) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	// cascade removes dependent reviews in the same statement
	err := h.Svc.DeleteBusiness(r.Context(), id)
	if err == domain.ErrBusinessNotFound {
		writeErr(w, http.StatusNotFound, msgBusinessNF)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("delete business failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- reviews ----

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	if missing := app.MissingField(body, app.RequiredReviewFields); missing != "" {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	userID, ok1 := asInt64(body["user_id"])
	businessID, ok2 := asInt64(body["business_id"])
	stars, ok3 := asInt64(body["stars"])
	if !ok1 || !ok2 || !ok3 {
		writeErr(w, http.StatusInternalServerError, msgCreateReview)
		return
	}
	in := domain.ReviewInput{UserID: userID, BusinessID: businessID, Stars: stars}
	if v, present := body["review_text"]; present {
		in.Text = asString(v)
	}

	rv, err := h.Svc.CreateReview(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, app.MapReview(h.baseURL(r), rv))
	case err == domain.ErrBusinessNotFound:
		writeErr(w, http.StatusNotFound, msgBusinessNF)
	default:
		if ce, isConstraint := domain.AsConstraint(err); isConstraint {
			if ce.Kind == domain.ConstraintUnique {
				writeErr(w, http.StatusConflict, msgDuplicateReview)
				return
			}
			// stars out of range, or the FK losing a race with a delete
			writeErr(w, http.StatusBadRequest, msgInvalidReview)
			return
		}
		log.Error().Err(err).Msg("create review failed")
		writeErr(w, http.StatusInternalServerError, msgCreateReview)
	}
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgReviewNF)
		return
	}
	rv, err := h.Svc.GetReview(r.Context(), id)
	if err == domain.ErrReviewNotFound {
		writeErr(w, http.StatusNotFound, msgReviewNF)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("get review failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, app.MapReview(h.baseURL(r), rv))
}

func (h *Handlers) listReviewsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeErr(w, http.StatusNotFound, msgNotFound)
		return
	}
	rvs, err := h.Svc.ListReviewsByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("list reviews by user failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, app.MapReviews(h.baseURL(r), rvs))
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgReviewNF)
		return
	}
	body, ok := decodeBody(r)
	if !ok {
		body = map[string]any{}
	}
	if _, present := body["stars"]; !present {
		writeErr(w, http.StatusBadRequest, msgMissingAttrs)
		return
	}
	stars, ok := asInt64(body["stars"])
	if !ok {
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	upd := domain.ReviewUpdate{Stars: stars}
	if v, present := body["review_text"]; present {
		t := asString(v)
		upd.Text = &t
	}

	rv, err := h.Svc.UpdateReview(r.Context(), id, upd)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, app.MapReview(h.baseURL(r), rv))
	case err == domain.ErrReviewNotFound:
		writeErr(w, http.StatusNotFound, msgReviewNF)
	default:
		if _, isConstraint := domain.AsConstraint(err); isConstraint {
			writeErr(w, http.StatusBadRequest, msgInvalidReview)
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("update review failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
	}
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeErr(w, http.StatusNotFound, msgReviewNF)
		return
	}
	err := h.Svc.DeleteReview(r.Context(), id)
	if err == domain.ErrReviewNotFound {
		writeErr(w, http.StatusNotFound, msgReviewNF)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("delete review failed")
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
