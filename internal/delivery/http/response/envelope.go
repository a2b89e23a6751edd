package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the fixed JSON wrapper every endpoint returns: success and
// message always, plus the operation-specific keys (data, count,
// published_count, updated_fields, deleted_user, deleted_post, error, errors).
type Envelope map[string]any

// WriteJSON renders the envelope with the given status code. Content-Type is
// already set by the headers middleware.
func WriteJSON(w http.ResponseWriter, status int, body Envelope) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are gone at this point; nothing left to do.
		return
	}
}
