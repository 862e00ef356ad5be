package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/middleware"
	"github.com/ndewijer/portfolio-draft-seeder/internal/api/response"
	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
	"github.com/ndewijer/portfolio-draft-seeder/internal/metrics"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
	"github.com/ndewijer/portfolio-draft-seeder/internal/testutil"
)

func setupDraftHandler(t *testing.T) (*PortfolioDraftHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ds := testutil.NewTestPortfolioDraftService(t, db, metrics.New())
	return NewPortfolioDraftHandler(ds), db
}

func newDraftRequest(method, path, draftID, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(middleware.DraftIDParam, draftID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPortfolioDraftHandler_CreatePortfolioDraft(t *testing.T) {
	t.Run("creates an empty draft", func(t *testing.T) {
		handler, db := setupDraftHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/portfolioDrafts", nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolioDraft(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var draft model.PortfolioDraft
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&draft)

		if draft.ID == "" {
			t.Error("Expected draft ID to be set")
		}
		if draft.Status != model.StatusNotStarted {
			t.Errorf("Expected status not_started, got %q", draft.Status)
		}
		if draft.Name != "" || draft.NumPortfolioManagers != 0 {
			t.Errorf("Expected empty draft, got %+v", draft)
		}

		testutil.AssertRowCount(t, db, "portfolio_draft", 1)
	})

	t.Run("ignores a truthy body", func(t *testing.T) {
		handler, db := setupDraftHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/portfolioDrafts", strings.NewReader(`{"name":"ignored"}`))
		w := httptest.NewRecorder()

		handler.CreatePortfolioDraft(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "portfolio_draft", 1)
	})

	t.Run("rejects falsy or unparseable bodies", func(t *testing.T) {
		for _, body := range []string{"null", "false", "0", `""`, "{not json"} {
			handler, db := setupDraftHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/portfolioDrafts", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreatePortfolioDraft(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, w.Code)
				continue
			}

			var errResp response.ErrorResponse
			//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
			json.NewDecoder(w.Body).Decode(&errResp)

			if errResp.Code != response.CodeInvalidInput || errResp.Message != apperrors.MsgRequestBodyMustBeEmpty {
				t.Errorf("body %s: expected %s %q, got %s %q", body, response.CodeInvalidInput, apperrors.MsgRequestBodyMustBeEmpty, errResp.Code, errResp.Message)
			}
			testutil.AssertRowCount(t, db, "portfolio_draft", 0)
		}
	})
}

func TestPortfolioDraftHandler_PortfolioDrafts(t *testing.T) {
	t.Run("returns empty array when no drafts exist", func(t *testing.T) {
		handler, _ := setupDraftHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/portfolioDrafts", nil)
		w := httptest.NewRecorder()

		handler.PortfolioDrafts(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := strings.TrimSpace(w.Body.String()); got != "[]" {
			t.Errorf("Expected empty JSON array, got %s", got)
		}
	})

	t.Run("pages through drafts in creation order", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		drafts := testutil.CreatePortfolioDrafts(t, db, 3)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/portfolioDrafts", map[string]string{
			"limit":  "2",
			"offset": "1",
		})
		w := httptest.NewRecorder()

		handler.PortfolioDrafts(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got []model.PortfolioDraft
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		ids := make([]string, len(got))
		for i, d := range got {
			ids[i] = d.ID
		}
		want := []string{drafts[1].ID, drafts[2].ID}
		if diff := cmp.Diff(want, ids); diff != "" {
			t.Errorf("draft IDs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		handler, _ := setupDraftHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/portfolioDrafts", map[string]string{"limit": "-1"})
		w := httptest.NewRecorder()

		handler.PortfolioDrafts(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestPortfolioDraftHandler_PortfolioDraft(t *testing.T) {
	t.Run("returns the draft summary", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().WithStep(testutil.NewPortfolioStep()).Build(t, db)

		req := newDraftRequest(http.MethodGet, "/portfolioDrafts/"+draft.ID, draft.ID, "")
		w := httptest.NewRecorder()

		handler.PortfolioDraft(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.PortfolioDraft
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.Name != draft.Name {
			t.Errorf("Expected name %q, got %q", draft.Name, got.Name)
		}
		if got.NumPortfolioManagers != 1 {
			t.Errorf("Expected 1 portfolio manager, got %d", got.NumPortfolioManagers)
		}
	})

	t.Run("returns 404 for unknown draft", func(t *testing.T) {
		handler, _ := setupDraftHandler(t)
		id := testutil.MakeID()

		req := newDraftRequest(http.MethodGet, "/portfolioDrafts/"+id, id, "")
		w := httptest.NewRecorder()

		handler.PortfolioDraft(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}

		var errResp response.ErrorResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&errResp)

		if errResp.Message != apperrors.MsgPortfolioDraftNotFound {
			t.Errorf("Expected message %q, got %q", apperrors.MsgPortfolioDraftNotFound, errResp.Message)
		}
	})
}

func TestPortfolioDraftHandler_DeletePortfolioDraft(t *testing.T) {
	t.Run("deletes draft and its step", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().WithStep(testutil.NewPortfolioStep()).Build(t, db)

		req := newDraftRequest(http.MethodDelete, "/portfolioDrafts/"+draft.ID, draft.ID, "")
		w := httptest.NewRecorder()

		handler.DeletePortfolioDraft(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "portfolio_draft", 0)
		testutil.AssertRowCount(t, db, "portfolio_step", 0)
	})

	t.Run("returns 404 for unknown draft", func(t *testing.T) {
		handler, _ := setupDraftHandler(t)
		id := testutil.MakeID()

		req := newDraftRequest(http.MethodDelete, "/portfolioDrafts/"+id, id, "")
		w := httptest.NewRecorder()

		handler.DeletePortfolioDraft(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPortfolioDraftHandler_CreatePortfolioStep(t *testing.T) {
	validBody := `{
		"name": "Mission Portfolio",
		"description": "Quarterly seeding",
		"csp": ["CSP A"],
		"dod_components": ["army", "navy"],
		"portfolio_managers": ["jane.doe@foobartest.mil", "john_smith@foobartest.mil"]
	}`

	t.Run("stores the step and echoes it back", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, validBody)
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got model.PortfolioStep
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		want := model.PortfolioStep{
			Name:              "Mission Portfolio",
			Description:       "Quarterly seeding",
			CSP:               []string{"CSP A"},
			DoDComponents:     []string{"army", "navy"},
			PortfolioManagers: []string{"jane.doe@foobartest.mil", "john_smith@foobartest.mil"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("step mismatch (-want +got):\n%s", diff)
		}

		testutil.AssertRowCount(t, db, "portfolio_step", 1)
	})

	t.Run("accepts an empty dod_components list", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		body := `{"name":"x","csp":["CSP B"],"dod_components":[],"portfolio_managers":[]}`
		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, body)
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for empty body", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, "")
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, `{"name":`)
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 with field details when required fields are missing", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, `{"description":"only"}`)
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}

		var errResp struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		}
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&errResp)

		if errResp.Code != response.CodeInvalidInput {
			t.Errorf("Expected code %s, got %s", response.CodeInvalidInput, errResp.Code)
		}
		for _, field := range []string{"name", "csp", "dod_components", "portfolio_managers"} {
			if _, ok := errResp.Details[field]; !ok {
				t.Errorf("Expected details for %q, got %v", field, errResp.Details)
			}
		}
		testutil.AssertRowCount(t, db, "portfolio_step", 0)
	})

	t.Run("returns 404 for unknown draft", func(t *testing.T) {
		handler, _ := setupDraftHandler(t)
		id := testutil.MakeID()

		req := newDraftRequest(http.MethodPost, "/portfolioDrafts/"+id+"/portfolio", id, validBody)
		w := httptest.NewRecorder()

		handler.CreatePortfolioStep(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPortfolioDraftHandler_PortfolioStep(t *testing.T) {
	t.Run("returns the stored step", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		step := testutil.NewPortfolioStep()
		draft := testutil.NewPortfolioDraft().WithStep(step).Build(t, db)

		req := newDraftRequest(http.MethodGet, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, "")
		w := httptest.NewRecorder()

		handler.PortfolioStep(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.PortfolioStep
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if diff := cmp.Diff(step, got); diff != "" {
			t.Errorf("step mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returns 404 when draft has no step yet", func(t *testing.T) {
		handler, db := setupDraftHandler(t)
		draft := testutil.NewPortfolioDraft().Build(t, db)

		req := newDraftRequest(http.MethodGet, "/portfolioDrafts/"+draft.ID+"/portfolio", draft.ID, "")
		w := httptest.NewRecorder()

		handler.PortfolioStep(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
