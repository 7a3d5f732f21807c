package app_test

import (
	"testing"

	"bizreviews/internal/app"
)

func TestMissingField_EachBusinessField(t *testing.T) {
	full := func() map[string]any {
		return map[string]any{
			"owner_id": 1.0, "name": "n", "street_address": "s",
			"city": "c", "state": "OR", "zip_code": "97330",
		}
	}
	if got := app.MissingField(full(), app.RequiredBusinessFields); got != "" {
		t.Fatalf("complete body reported missing %q", got)
	}
	for _, f := range app.RequiredBusinessFields {
		body := full()
		delete(body, f)
		if got := app.MissingField(body, app.RequiredBusinessFields); got != f {
			t.Fatalf("omitted %q, got %q", f, got)
		}
	}
}

func TestMissingField_PresenceNotTruthiness(t *testing.T) {
	// zero values and nulls count as present; only absence matters
	body := map[string]any{"user_id": 0.0, "business_id": nil, "stars": ""}
	if got := app.MissingField(body, app.RequiredReviewFields); got != "" {
		t.Fatalf("present-but-zero field reported missing %q", got)
	}
}

func TestMissingField_ReportsFirstInOrder(t *testing.T) {
	body := map[string]any{"stars": 5.0}
	if got := app.MissingField(body, app.RequiredReviewFields); got != "user_id" {
		t.Fatalf("expected user_id first, got %q", got)
	}
}
