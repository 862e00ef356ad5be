// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/response"
	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
	"github.com/ndewijer/portfolio-draft-seeder/internal/validation"
)

// DraftIDParam is the URL parameter holding a portfolio draft ID.
const DraftIDParam = "portfolioDraftId"

// ValidateDraftIDMiddleware validates that the portfolioDraftId URL parameter is present and is a valid UUID.
// Drafts are only ever created with UUIDs, so anything else is answered with 404 Not Found.
//
// Example usage in router:
//
//	r.Route("/{portfolioDraftId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateDraftIDMiddleware)
//	    r.Get("/", handler.PortfolioDraft)
//	})
func ValidateDraftIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, DraftIDParam)

		if id == "" {
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusNotFound, apperrors.MsgPortfolioDraftNotFound, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
