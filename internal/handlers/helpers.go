package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/websharper-samples/PeopleAPI/internal/api"
)

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeSuccess writes a 200 success result. The payload's fields are
// flattened into the response object; a nil payload produces the empty
// success marker {"result":"success"}.
func writeSuccess(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, api.Success(payload))
}

// writeFailure writes a failure result of the form
// {"result":"failure","message": message}.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.Failure(message))
}
