package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBDPhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01712345678", "+8801712345678"},
		{"8801712345678", "+8801712345678"},
		{"008801712345678", "+8801712345678"},
		{"+8801712345678", "+8801712345678"},
		{"+880 17-1234 5678", "+8801712345678"},
		{"01512345678", "+8801512345678"},
		{"01912345678", "+8801912345678"},
	}
	for _, tc := range cases {
		got, err := NormalizeBDPhoneNumber(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeBDPhoneNumberRejectsInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"12345",
		"01212345678",   // operator prefix 2 tidak ada
		"0171234567",    // kurang satu digit
		"017123456789",  // kelebihan satu digit
		"+8501712345678",
		"not-a-number",
	} {
		_, err := NormalizeBDPhoneNumber(in)
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber, in)
	}
}

func TestNormalizePhoneNumberByCountry(t *testing.T) {
	got, err := NormalizePhoneNumber("BD", "01712345678")
	assert.NoError(t, err)
	assert.Equal(t, "+8801712345678", got)

	// US masih pass-through
	got, err = NormalizePhoneNumber("US", "+12125551234")
	assert.NoError(t, err)
	assert.Equal(t, "+12125551234", got)

	_, err = NormalizePhoneNumber("xx", "01712345678")
	assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
}
