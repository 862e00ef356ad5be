package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
)

// maxBodyBytes caps request bodies accepted by the handlers.
const maxBodyBytes = 1 << 20

// readBody reads at most maxBodyBytes of the request body. A missing body reads as empty.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return bytes.TrimSpace(body), nil
}

// checkIgnorableBody accepts an absent body or one holding a truthy JSON value.
// Invalid JSON and the falsy values null, false, 0 and "" are rejected.
func checkIgnorableBody(r *http.Request) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	switch val := v.(type) {
	case nil:
		return errors.New("body is null")
	case bool:
		if !val {
			return errors.New("body is false")
		}
	case float64:
		if val == 0 {
			return errors.New("body is 0")
		}
	case string:
		if val == "" {
			return errors.New("body is an empty string")
		}
	}
	return nil
}

// parseJSON decodes the request body into T.
// Returns apperrors.ErrEmptyRequestBody when there is no body at all.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	body, err := readBody(r)
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, apperrors.ErrEmptyRequestBody
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	return req, nil
}
