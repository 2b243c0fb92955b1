package domain

import "addressbook/pkg/serrors"

// Name identifies a contact. It is never empty and cannot change once built.
type Name struct {
	value string
}

// NewName validates value and returns it as a Name. An empty value is rejected
// with serrors.ErrValidation.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, serrors.With(serrors.ErrValidation, "empty name")
	}

	return Name{value: value}, nil
}

// Value returns the name exactly as it was given.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }
