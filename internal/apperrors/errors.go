package apperrors

import "errors"

// Client-facing messages shared by the API handlers and middleware.
const (
	// MsgPortfolioDraftNotFound is returned for any unknown or malformed draft ID.
	MsgPortfolioDraftNotFound = "Portfolio Draft with the given ID does not exist"

	// MsgRequestBodyMustBeEmpty is returned when draft creation receives a falsy or unparseable body.
	MsgRequestBodyMustBeEmpty = "Request body must be empty"
)

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioDraftNotFound indicates that a portfolio draft with the given ID does not exist.
	ErrPortfolioDraftNotFound = errors.New("portfolio draft not found")

	// ErrPortfolioStepNotFound indicates that the draft exists but no portfolio step was submitted yet.
	ErrPortfolioStepNotFound = errors.New("portfolio step not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrEmptyRequestBody indicates that an endpoint requiring a body received none.
	ErrEmptyRequestBody = errors.New("request body must not be empty")

	// ErrInvalidRequestBody indicates that the body was not valid JSON or had the wrong shape.
	ErrInvalidRequestBody = errors.New("a valid PortfolioStep object must be provided"))

// Operation failure errors represent system-level failures when retrieving or storing data.
var (
	ErrFailedToCreatePortfolioDraft   = errors.New("failed to create portfolio draft")
	ErrFailedToRetrievePortfolioDraft = errors.New("failed to retrieve portfolio draft")
	ErrFailedToDeletePortfolioDraft   = errors.New("failed to delete portfolio draft")
	ErrFailedToStorePortfolioStep     = errors.New("failed to store portfolio step")
)

// Client errors are returned by the drafts API client when a response cannot be used.
var (
	// ErrInvalidJSON indicates that the API answered with a body that is not JSON.
	ErrInvalidJSON = errors.New("response is not valid JSON")

	// ErrMissingDraftID indicates that a draft creation response carried no usable id.
	ErrMissingDraftID = errors.New("response does not contain an id")
)
