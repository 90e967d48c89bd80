package constants

import "strings"

// Negara yang dilayani
const (
	CountryBD = "BD"
	CountryUS = "US"
)

var SupportedCountries = []string{CountryBD, CountryUS}

// NormalizeCountry menerima kode dari path param (boleh lowercase) dan
// mengembalikan bentuk kanonik uppercase.
func NormalizeCountry(code string) (string, bool) {
	code = strings.ToUpper(code)
	for _, c := range SupportedCountries {
		if c == code {
			return code, true
		}
	}
	return "", false
}

func IsSupportedCountry(code string) bool {
	_, ok := NormalizeCountry(code)
	return ok
}

// Tipe notifikasi
const (
	NotificationNewDirectRequest     = "new-direct-request"
	NotificationNewHotJob            = "new-hot-job"
	NotificationRequestAccepted      = "direct-request-accepted"
	NotificationHotJobApplied        = "hot-job-applied"
	NotificationTutorConfirmed       = "tutor-confirmed"
	NotificationParentConfirmed      = "parent-confirmed"
	NotificationJobConfirmed         = "job-confirmed"
	NotificationReviewReceived       = "review-received"
	NotificationPremiumActivated     = "premium-activated"
	NotificationAccountVerifiedByOps = "account-verified-by-ops"
)

// Tipe institusi academic background
const (
	InstitutionSchool     = "school"
	InstitutionCollege    = "college"
	InstitutionUniversity = "undergraduate-university"
)
