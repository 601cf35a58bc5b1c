package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/websharper-samples/PeopleAPI/internal/api"
	"github.com/websharper-samples/PeopleAPI/internal/events"
	"github.com/websharper-samples/PeopleAPI/internal/people"
)

// personNotFound is the fixed message carried by every missing-id failure.
const personNotFound = "Person not found."

// PeopleHandler provides the person CRUD endpoints backed by the in-memory
// store. Every successful mutation is announced on the event broker.
type PeopleHandler struct {
	store  *people.Store
	events *events.Broker
}

// NewPeopleHandler creates a new PeopleHandler. The broker may be nil when
// no change feed is wanted (tests mostly).
func NewPeopleHandler(st *people.Store, ev *events.Broker) *PeopleHandler {
	return &PeopleHandler{store: st, events: ev}
}

// Routes registers the people routes on the given chi router.
func (h *PeopleHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Edit)
	r.Delete("/{id}", h.Delete)
}

// List returns every stored person with its id, ordered by id ascending.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, struct {
		People []people.Person `json:"people"`
	}{h.store.List()})
}

// Get returns the person stored at {id}.
func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	data, err := h.store.Get(id)
	switch {
	case err == nil:
		writeSuccess(w, data)
	case errors.Is(err, people.ErrNotFound):
		writeFailure(w, http.StatusNotFound, personNotFound)
	default:
		writeFailure(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// Create inserts a new person and returns the assigned id. Creation always
// succeeds once the body parses.
func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data people.PersonData
	if err := api.ReadJSON(r, &data); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id := h.store.Create(data)
	h.emit(events.PersonCreated, id)
	writeSuccess(w, struct {
		ID int `json:"id"`
	}{id})
}

// Edit replaces the full record stored at {id}; the id itself is never
// changed by an edit.
func (h *PeopleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var data people.PersonData
	if err := api.ReadJSON(r, &data); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	switch err := h.store.Edit(id, data); {
	case err == nil:
		h.emit(events.PersonUpdated, id)
		writeSuccess(w, nil)
	case errors.Is(err, people.ErrNotFound):
		writeFailure(w, http.StatusNotFound, personNotFound)
	default:
		writeFailure(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// Delete removes the person stored at {id}. Deleting the same id twice
// fails the second time.
func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	switch err := h.store.Delete(id); {
	case err == nil:
		h.emit(events.PersonDeleted, id)
		writeSuccess(w, nil)
	case errors.Is(err, people.ErrNotFound):
		writeFailure(w, http.StatusNotFound, personNotFound)
	default:
		writeFailure(w, http.StatusInternalServerError, "Internal server error.")
	}
}

func (h *PeopleHandler) emit(typ string, id int) {
	if h.events != nil {
		h.events.Publish(events.Event{Type: typ, ID: id})
	}
}

// idParam parses the {id} path segment. A non-integer id is rejected with a
// generic bad request and never reaches the store.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}
