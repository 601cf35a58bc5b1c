package people

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time-of-day component. It marshals to
// and from JSON as a "yyyy-MM-dd" string.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "yyyy-MM-dd" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String implements fmt.Stringer.
func (d Date) String() string { return d.Format(time.DateOnly) }

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a %q string", time.DateOnly)
	}
	t, err := time.Parse(time.DateOnly, string(b[1:len(b)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// PersonData is the payload of a person record. It carries no identifier:
// ids are assigned and owned by the Store. The death date is omitted from
// the JSON form entirely when absent.
type PersonData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Born      Date   `json:"born"`
	Died      *Date  `json:"died,omitempty"`
}

// Person is a stored record together with its id. Embedding keeps the JSON
// form flat: {"id":1,"firstName":...}.
type Person struct {
	ID int `json:"id"`
	PersonData
}
