package utils

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes bounds request bodies; cover images arrive as data URIs.
const maxBodyBytes = 20 << 20 // 20 MB

// DecodeJSONRequest decodes the request body into v. On failure it writes a
// 400 response and returns the error, so callers can simply return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body.")
		return err
	}
	return nil
}
