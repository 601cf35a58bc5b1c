// Package api defines the success/failure envelope shared by every JSON
// endpoint and the strict request-body reader.
package api

import (
	"encoding/json"
	"fmt"
)

// Result is a two-variant success/failure envelope. A success optionally
// carries a payload whose fields are flattened into the same JSON object as
// the "result" tag, tag first:
//
//	{"result":"success","id":5}
//	{"result":"success"}
//	{"result":"failure","message":"Person not found."}
//
// The flattened form is a wire-compatibility requirement, so the payload
// must marshal to a JSON object.
type Result struct {
	ok      bool
	payload any
	message string
}

// Success returns a successful Result. A nil payload yields the empty
// success marker {"result":"success"}.
func Success(payload any) Result {
	return Result{ok: true, payload: payload}
}

// Failure returns a failed Result carrying a message.
func Failure(message string) Result {
	return Result{message: message}
}

// MarshalJSON implements json.Marshaler. Success payload fields are spliced
// into the tag object rather than nested under a key.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return json.Marshal(struct {
			Result  string `json:"result"`
			Message string `json:"message"`
		}{Result: "failure", Message: r.message})
	}

	out := []byte(`{"result":"success"`)
	if r.payload == nil {
		return append(out, '}'), nil
	}

	body, err := json.Marshal(r.payload)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return nil, fmt.Errorf("api: success payload must marshal to a JSON object, got %s", body)
	}
	if len(body) == 2 {
		return append(out, '}'), nil
	}
	out = append(out, ',')
	return append(out, body[1:]...), nil
}
