package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/middleware"
	"github.com/ndewijer/portfolio-draft-seeder/internal/api/request"
	"github.com/ndewijer/portfolio-draft-seeder/internal/api/response"
	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
	"github.com/ndewijer/portfolio-draft-seeder/internal/service"
	"github.com/ndewijer/portfolio-draft-seeder/internal/validation"
)

// PortfolioDraftHandler handles HTTP requests for portfolio draft endpoints.
// It parses requests and delegates to the PortfolioDraftService.
type PortfolioDraftHandler struct {
	draftService *service.PortfolioDraftService
}

// NewPortfolioDraftHandler creates a new PortfolioDraftHandler.
func NewPortfolioDraftHandler(draftService *service.PortfolioDraftService) *PortfolioDraftHandler {
	return &PortfolioDraftHandler{
		draftService: draftService,
	}
}

// CreatePortfolioDraft handles POST requests that open a new, empty portfolio draft.
// No body is expected. A body that parses to a truthy JSON value (an object, say) is ignored.
//
// Endpoint: POST /portfolioDrafts
// Response: 201 Created with PortfolioDraft
// Error: 400 Bad Request if the body is not JSON or is null, false, 0 or ""
// Error: 500 Internal Server Error if the draft cannot be stored
func (h *PortfolioDraftHandler) CreatePortfolioDraft(w http.ResponseWriter, r *http.Request) {
	if err := checkIgnorableBody(r); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.MsgRequestBodyMustBeEmpty, err.Error())
		return
	}

	draft, err := h.draftService.CreatePortfolioDraft(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreatePortfolioDraft.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, draft)
}

// PortfolioDrafts handles GET requests listing drafts in creation order.
//
// Endpoint: GET /portfolioDrafts?limit=20&offset=0
// Response: 200 OK with []PortfolioDraft
// Error: 400 Bad Request if limit or offset is not a non-negative integer
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioDraftHandler) PortfolioDrafts(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseListPortfolioDrafts(
		r.URL.Query().Get("limit"),
		r.URL.Query().Get("offset"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid paging parameters", err.Error())
		return
	}

	drafts, err := h.draftService.GetPortfolioDrafts(r.Context(), req.ToFilter())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolioDraft.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, drafts)
}

// PortfolioDraft handles GET requests for a single draft summary.
//
// Endpoint: GET /portfolioDrafts/{portfolioDraftId}
// Response: 200 OK with PortfolioDraft
// Error: 404 Not Found if the draft does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioDraftHandler) PortfolioDraft(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, middleware.DraftIDParam)

	draft, err := h.draftService.GetPortfolioDraft(r.Context(), draftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioDraftNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolioDraft.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, draft)
}

// DeletePortfolioDraft handles DELETE requests removing a draft and its portfolio step.
//
// Endpoint: DELETE /portfolioDrafts/{portfolioDraftId}
// Response: 204 No Content
// Error: 404 Not Found if the draft does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *PortfolioDraftHandler) DeletePortfolioDraft(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, middleware.DraftIDParam)

	if err := h.draftService.DeletePortfolioDraft(r.Context(), draftID); err != nil {
		if errors.Is(err, apperrors.ErrPortfolioDraftNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeletePortfolioDraft.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// CreatePortfolioStep handles POST requests submitting the portfolio step of a draft.
// The stored step is echoed back.
//
// Endpoint: POST /portfolioDrafts/{portfolioDraftId}/portfolio
// Request Body: CreatePortfolioStepRequest (name, description, csp, dod_components, portfolio_managers)
// Response: 201 Created with PortfolioStep
// Error: 400 Bad Request if the body is missing, malformed or fails validation
// Error: 404 Not Found if the draft does not exist
// Error: 500 Internal Server Error if the step cannot be stored
func (h *PortfolioDraftHandler) CreatePortfolioStep(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, middleware.DraftIDParam)

	req, err := parseJSON[request.CreatePortfolioStepRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	if err := validation.ValidateCreatePortfolioStep(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), verr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	step, err := h.draftService.CreatePortfolioStep(r.Context(), draftID, req.ToModel())
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioDraftNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStorePortfolioStep.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, step)
}

// PortfolioStep handles GET requests for the portfolio step of a draft.
//
// Endpoint: GET /portfolioDrafts/{portfolioDraftId}/portfolio
// Response: 200 OK with PortfolioStep
// Error: 404 Not Found if the draft does not exist or has no portfolio step yet
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioDraftHandler) PortfolioStep(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, middleware.DraftIDParam)

	step, err := h.draftService.GetPortfolioStep(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPortfolioDraftNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, "")
		case errors.Is(err, apperrors.ErrPortfolioStepNotFound):
			response.RespondError(w, http.StatusNotFound, "Portfolio Step for the given draft does not exist", "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolioDraft.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, step)
}
