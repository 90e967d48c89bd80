package helper

import (
	"errors"
	"fmt"
	"regexp"

	"yoda_backend/internals/constants"
)

// ErrInvalidPhoneNumber — nomor gagal validasi per negara; controller
// membalasnya 400.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

var (
	reNonDigit = regexp.MustCompile(`\D`)
	reBDPhone  = regexp.MustCompile(`^(008801|8801|01)(?P<local_number>[1|5-9]{1}(\d){8})$`)
)

// NormalizeBDPhoneNumber memvalidasi nomor Bangladesh dan mengembalikan
// bentuk kanonik +8801XXXXXXXXX.
func NormalizeBDPhoneNumber(phoneNumber string) (string, error) {
	digits := reNonDigit.ReplaceAllString(phoneNumber, "")
	m := reBDPhone.FindStringSubmatch(digits)
	if m == nil {
		return "", fmt.Errorf("%w: must be a valid Bangladeshi number", ErrInvalidPhoneNumber)
	}
	return "+8801" + m[2], nil
}

// NormalizeUSPhoneNumber — pass-through (belum ada validasi khusus US).
func NormalizeUSPhoneNumber(phoneNumber string) (string, error) {
	return phoneNumber, nil
}

// PhoneNumberValidatorCountryMap — normalizer per negara.
var PhoneNumberValidatorCountryMap = map[string]func(string) (string, error){
	constants.CountryBD: NormalizeBDPhoneNumber,
	constants.CountryUS: NormalizeUSPhoneNumber,
}

func NormalizePhoneNumber(country, phoneNumber string) (string, error) {
	fn, ok := PhoneNumberValidatorCountryMap[country]
	if !ok {
		return "", fmt.Errorf("%w: unsupported country %s", ErrInvalidPhoneNumber, country)
	}
	return fn(phoneNumber)
}
