package model

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"yoda_backend/internals/constants"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func uintPtr(n uint) *uint    { return &n }

func TestGetAccountType(t *testing.T) {
	now := time.Now().UTC()

	tutor := Tutor{DateTillPremiumAccountValid: now.Add(24 * time.Hour)}
	assert.Equal(t, constants.AccountTypePremium, tutor.GetAccountType(now))

	tutor.DateTillPremiumAccountValid = now.Add(-time.Minute)
	assert.Equal(t, constants.AccountTypeBasic, tutor.GetAccountType(now))
}

func TestEmptySchedule(t *testing.T) {
	s := EmptySchedule()
	assert.Len(t, []bool(s), constants.ScheduleSlots)
	for _, slot := range s {
		assert.False(t, slot)
	}
}

func completePersonalInfoTutor() Tutor {
	dob := time.Date(1998, 5, 1, 0, 0, 0, 0, time.UTC)
	tutor := Tutor{
		AcademicMedium:     strPtr("english"),
		About:              strPtr("CSE student, 3 years of tutoring"),
		HomeAreaID:         uintPtr(1),
		GovernmentIDType:   strPtr("nid"),
		GovernmentIDNumber: strPtr("1234567890"),
	}
	tutor.Gender = strPtr("male")
	tutor.DateOfBirth = &dob
	tutor.DisplayPicture = strPtr("https://cdn.example.com/dp.webp")
	return tutor
}

func TestRecomputePersonalInformationComplete(t *testing.T) {
	tutor := completePersonalInfoTutor()
	tutor.RecomputePersonalInformationComplete()
	assert.True(t, tutor.IsPersonalInformationComplete)

	tutor.About = nil
	tutor.RecomputePersonalInformationComplete()
	assert.False(t, tutor.IsPersonalInformationComplete)

	tutor = completePersonalInfoTutor()
	tutor.GovernmentIDNumber = strPtr("")
	tutor.RecomputePersonalInformationComplete()
	assert.False(t, tutor.IsPersonalInformationComplete)
}

func TestRecomputeTeachingPreferencesComplete(t *testing.T) {
	tutor := Tutor{
		WantsToTeachOffline:              true,
		OfflinePreferredTeachingAreas:    pq.Int64Array{1, 2},
		OfflinePreferredTeachingSubjects: pq.Int64Array{3},
		SalaryRangeStart:                 intPtr(3000),
		SalaryRangeEnd:                   intPtr(8000),
	}
	tutor.RecomputeTeachingPreferencesComplete()
	assert.True(t, tutor.IsTeachingPreferencesComplete)

	// online diminta tapi rate belum diisi
	tutor.WantsToTeachOnline = true
	tutor.OnlinePreferredTeachingSubjects = pq.Int64Array{5}
	tutor.RecomputeTeachingPreferencesComplete()
	assert.False(t, tutor.IsTeachingPreferencesComplete)

	tutor.OnlineHourlyRate = intPtr(400)
	tutor.RecomputeTeachingPreferencesComplete()
	assert.True(t, tutor.IsTeachingPreferencesComplete)

	// tidak mau ngajar sama sekali → tidak complete
	neither := Tutor{SalaryRangeStart: intPtr(1), SalaryRangeEnd: intPtr(2)}
	neither.RecomputeTeachingPreferencesComplete()
	assert.False(t, neither.IsTeachingPreferencesComplete)
}

func TestIsAcademicBackgroundComplete(t *testing.T) {
	complete := &AcademicBackground{IsComplete: true}
	incomplete := &AcademicBackground{}

	bd := Tutor{
		UndergraduateUniversityAB: complete,
		SchoolAB:                  complete,
		CollegeAB:                 complete,
	}
	bd.Country = constants.CountryBD
	assert.True(t, bd.IsAcademicBackgroundComplete())

	bd.CollegeAB = incomplete
	assert.False(t, bd.IsAcademicBackgroundComplete())

	// di luar BD, college tidak diwajibkan
	us := Tutor{
		UndergraduateUniversityAB: complete,
		SchoolAB:                  complete,
	}
	us.Country = constants.CountryUS
	assert.True(t, us.IsAcademicBackgroundComplete())

	us.SchoolAB = nil
	assert.False(t, us.IsAcademicBackgroundComplete())
}
