package helpers

import (
	"encoding/json"
	"net/http"
)

// Decode decodes the request body into dest. On failure it writes a 400 error
// response and returns false; callers should return immediately in that case.
func Decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
