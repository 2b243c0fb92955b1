package domain_test

import (
	"addressbook/pkg/domain"
	"addressbook/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string, phones ...string) *domain.Record {
	t.Helper()

	r, err := domain.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}

	return r
}

func phoneValues(r *domain.Record) []string {
	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.Value()
	}

	return out
}

func TestNewRecord(t *testing.T) {
	r, err := domain.NewRecord("John")
	require.NoError(t, err)
	require.Equal(t, "John", r.Name().Value())
	require.Empty(t, r.Phones())

	r, err = domain.NewRecord("")
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Nil(t, r)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecord(t, "John", "1234567890", "1234567890")
	require.Equal(t, []string{"1234567890", "1234567890"}, phoneValues(r))

	err := r.AddPhone("12345")
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Len(t, r.Phones(), 2, "rejected phone must not be appended")
}

func TestRecord_PhonesIsACopy(t *testing.T) {
	r := newRecord(t, "John", "1234567890")

	phones := r.Phones()
	phones[0] = domain.Phone{}

	require.Equal(t, []string{"1234567890"}, phoneValues(r))
}

func TestRecord_FindPhone(t *testing.T) {
	r := newRecord(t, "John", "1234567890")

	p, ok := r.FindPhone("1234567890")
	require.True(t, ok)
	require.Equal(t, "1234567890", p.Value())

	_, ok = r.FindPhone("0987654321")
	require.False(t, ok)
}

func TestRecord_RemovePhone(t *testing.T) {
	cases := []struct {
		name    string
		phones  []string
		remove  string
		removed bool
		want    []string
	}{
		{
			name:    "only the first duplicate is removed",
			phones:  []string{"1111111111", "1111111111", "2222222222"},
			remove:  "1111111111",
			removed: true,
			want:    []string{"1111111111", "2222222222"},
		},
		{
			name:    "last element",
			phones:  []string{"1111111111", "2222222222"},
			remove:  "2222222222",
			removed: true,
			want:    []string{"1111111111"},
		},
		{
			name:    "missing value is a no-op",
			phones:  []string{"1111111111"},
			remove:  "3333333333",
			removed: false,
			want:    []string{"1111111111"},
		},
		{
			name:    "empty record",
			remove:  "1111111111",
			removed: false,
			want:    []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecord(t, "John", tc.phones...)
			require.Equal(t, tc.removed, r.RemovePhone(tc.remove))
			require.Equal(t, tc.want, phoneValues(r))
		})
	}
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces first match in place", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111", "2222222222", "1111111111")

		edited, err := r.EditPhone("1111111111", "9999999999")
		require.NoError(t, err)
		require.True(t, edited)
		require.Equal(t, []string{"9999999999", "2222222222", "1111111111"}, phoneValues(r))
	})

	t.Run("missing old value leaves phones unchanged", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		edited, err := r.EditPhone("3333333333", "9999999999")
		require.NoError(t, err)
		require.False(t, edited)
		require.Equal(t, []string{"1111111111"}, phoneValues(r))
	})

	t.Run("missing old value ignores an invalid new value", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		edited, err := r.EditPhone("3333333333", "bad")
		require.NoError(t, err)
		require.False(t, edited)
		require.Equal(t, []string{"1111111111"}, phoneValues(r))
	})

	t.Run("invalid new value is rejected", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		edited, err := r.EditPhone("1111111111", "111-111-1111")
		require.ErrorIs(t, err, serrors.ErrValidation)
		require.False(t, edited)
		require.Equal(t, []string{"1111111111"}, phoneValues(r))
	})
}

func TestRecord_String(t *testing.T) {
	require.Equal(t, "Contact name: Jane, phones: ", newRecord(t, "Jane").String())
	require.Equal(t,
		"Contact name: John, phones: 1112223333; 5555555555",
		newRecord(t, "John", "1112223333", "5555555555").String())
}
