package people

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned by Get, Edit and Delete when no record has the
// requested id.
var ErrNotFound = errors.New("people: person not found")

// Store is a thread-safe, in-memory collection of person records. It owns
// identifier assignment. All public methods are safe for concurrent use: a
// single exclusive lock is held for the full duration of every operation,
// reads included, so no two operations ever run in parallel.
type Store struct {
	mu     sync.Mutex
	people map[int]PersonData
	lastID int
}

// NewStore creates a new empty store. The first created record gets id 1.
func NewStore() *Store {
	return &Store{people: make(map[int]PersonData)}
}

// NewSeededStore creates a store pre-loaded with the initial person records,
// inserted in a fixed order so they always occupy ids 1 through 4.
func NewSeededStore() *Store {
	s := NewStore()
	for _, p := range seedPeople() {
		s.Create(p)
	}
	return s
}

func seedPeople() []PersonData {
	died := func(year int, month time.Month, day int) *Date {
		d := NewDate(year, month, day)
		return &d
	}
	return []PersonData{
		{FirstName: "Alonzo", LastName: "Church", Born: NewDate(1903, time.June, 14), Died: died(1995, time.August, 11)},
		{FirstName: "Alan", LastName: "Turing", Born: NewDate(1912, time.June, 23), Died: died(1954, time.June, 7)},
		{FirstName: "Bertrand", LastName: "Russell", Born: NewDate(1872, time.May, 18), Died: died(1970, time.February, 2)},
		{FirstName: "Noam", LastName: "Chomsky", Born: NewDate(1928, time.December, 7)},
	}
}

// Get returns the record stored at id.
func (s *Store) Get(id int) (PersonData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.people[id]
	if !ok {
		return PersonData{}, ErrNotFound
	}
	return p, nil
}

// Create inserts a new record and returns its id. Ids increase strictly and
// are never reused within the lifetime of the store, even after deletes.
func (s *Store) Create(data PersonData) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	s.people[s.lastID] = data
	return s.lastID
}

// Edit replaces the full record stored at id. The id itself never changes.
func (s *Store) Edit(id int, data PersonData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	s.people[id] = data
	return nil
}

// Delete removes the record stored at id. Deleting the same id twice fails
// the second time.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	delete(s.people, id)
	return nil
}

// List returns every record with its id, ordered by id ascending.
func (s *Store) List() []Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Person, 0, len(s.people))
	for id, data := range s.people {
		out = append(out, Person{ID: id, PersonData: data})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.people)
}
