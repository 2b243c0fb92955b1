package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Record is a single contact: a fixed Name and an ordered list of phone
// numbers. The list keeps insertion order and may hold duplicates.
//
// A Record is not safe for concurrent use.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates a contact with no phones. It fails with the same error as
// NewName when name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the contact's phone numbers in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// AddPhone validates value and appends it to the phone list. Duplicates are
// accepted.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)

	return nil
}

// RemovePhone removes the first phone equal to value and reports whether one
// was removed. Later duplicates stay in place.
func (r *Record) RemovePhone(value string) bool {
	i := r.index(value)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)

	return true
}

// EditPhone replaces the first phone equal to oldValue with newValue, keeping
// its position, and reports whether a replacement happened. A missing
// oldValue is a no-op. newValue is validated only when a match exists; an
// invalid newValue leaves the list untouched and returns a validation error.
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	i := r.index(oldValue)
	if i < 0 {
		return false, nil
	}

	p, err := NewPhone(newValue)
	if err != nil {
		return false, err
	}
	r.phones[i] = p

	return true, nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.index(value)
	if i < 0 {
		return Phone{}, false
	}

	return r.phones[i], true
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}

	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(values, "; "))
}

func (r *Record) index(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == value })
}
