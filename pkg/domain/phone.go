package domain

import (
	"addressbook/pkg/serrors"
	"regexp"
)

// PhoneDigits is the exact number of decimal digits a phone number holds.
const PhoneDigits = 10

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`) //nolint: gochecknoglobals

// Phone is a phone number made of exactly PhoneDigits ASCII digits, with no
// separators or surrounding characters.
type Phone struct {
	value string
}

// IsValidPhone reports whether value is an acceptable phone number.
func IsValidPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// NewPhone validates value and returns it as a Phone. Malformed values are
// rejected with serrors.ErrValidation.
func NewPhone(value string) (Phone, error) {
	if !IsValidPhone(value) {
		return Phone{}, serrors.With(serrors.ErrValidation, "invalid phone format: %q", value)
	}

	return Phone{value: value}, nil
}

// Value returns the digits of the phone number.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
