package draftsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
)

// Response is a successful (2xx) answer from the drafts API.
// The body is kept as raw JSON because the API shape beyond the draft id is opaque to the seeder.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// DraftID extracts the "id" field from a draft creation response.
// String ids are returned as-is, numeric ids in their decimal text form.
//
// Returns:
//   - string: The draft id
//   - error: apperrors.ErrMissingDraftID if the body is not an object, has no id, or the id is empty
func (r Response) DraftID() (string, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return "", fmt.Errorf("%w: body is not a JSON object", apperrors.ErrMissingDraftID)
	}

	switch id := fields["id"].(type) {
	case string:
		if strings.TrimSpace(id) == "" {
			return "", apperrors.ErrMissingDraftID
		}
		return id, nil
	case json.Number:
		return id.String(), nil
	case nil:
		return "", apperrors.ErrMissingDraftID
	default:
		return "", fmt.Errorf("%w: unsupported id type %T", apperrors.ErrMissingDraftID, id)
	}
}

// Pretty returns the body indented with two spaces.
func (r Response) Pretty() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Body, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
