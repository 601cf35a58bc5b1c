package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/websharper-samples/PeopleAPI/internal/people"
)

// SystemHandler provides health and introspection endpoints.
type SystemHandler struct {
	store *people.Store
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(st *people.Store) *SystemHandler {
	return &SystemHandler{store: st}
}

// Routes registers all system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness and the current number of stored records.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"people": h.store.Len(),
	})
}
