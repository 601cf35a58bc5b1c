package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payload fields splice into the envelope right after the result tag
func TestSuccessFlattensPayload(t *testing.T) {
	b, err := json.Marshal(Success(struct {
		ID int `json:"id"`
	}{5}))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"success","id":5}`, string(b))
}

// a nil payload yields the bare success marker
func TestSuccessEmpty(t *testing.T) {
	b, err := json.Marshal(Success(nil))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"success"}`, string(b))
}

// a payload with no marshalled fields also yields the bare marker
func TestSuccessEmptyObjectPayload(t *testing.T) {
	b, err := json.Marshal(Success(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"success"}`, string(b))
}

// several payload fields keep their own order after the tag
func TestSuccessMultipleFields(t *testing.T) {
	b, err := json.Marshal(Success(struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}{"Alan", "Turing"}))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"success","firstName":"Alan","lastName":"Turing"}`, string(b))
}

// map payloads work too since they marshal to objects
func TestSuccessMapPayload(t *testing.T) {
	b, err := json.Marshal(Success(map[string]int{"id": 7}))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"success","id":7}`, string(b))
}

// failures carry the tag and the message, nothing else
func TestFailure(t *testing.T) {
	b, err := json.Marshal(Failure("Person not found."))
	require.NoError(t, err)
	assert.Equal(t, `{"result":"failure","message":"Person not found."}`, string(b))
}

// payloads that do not marshal to a JSON object cannot be flattened
func TestSuccessRejectsNonObjectPayload(t *testing.T) {
	for _, payload := range []any{5, "text", []int{1, 2, 3}, true} {
		_, err := json.Marshal(Success(payload))
		assert.Error(t, err, "payload %v", payload)
	}
}
