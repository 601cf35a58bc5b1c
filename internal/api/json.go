package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ReadJSON decodes the request body into dst. Unknown fields and trailing
// data are rejected, so a payload either matches the documented shape
// exactly or never reaches the store.
func ReadJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("api: unexpected data after JSON body")
	}
	return nil
}
