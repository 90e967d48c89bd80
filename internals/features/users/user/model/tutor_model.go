package model

import (
	"time"

	"github.com/lib/pq"

	"yoda_backend/internals/constants"
)

type Tutor struct {
	UserCommon

	SignUpChannel string  `gorm:"type:varchar(32);not null;default:'organic'" json:"sign_up_channel"`
	Slug          *string `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	OldSlug       *string `gorm:"type:varchar(120)" json:"-"`

	// Personal information
	AcademicMedium       *string `gorm:"type:varchar(40)" json:"academic_medium"`
	AcademicFieldOfStudy *string `gorm:"type:varchar(120)" json:"academic_field_of_study"`
	About                *string `gorm:"type:text" json:"about"`
	HomeAreaID           *uint   `gorm:"column:home_area_id" json:"home_area"`
	GovernmentIDType     *string `gorm:"column:government_id_type;type:varchar(40)" json:"government_id_type"`
	GovernmentIDNumber   *string `gorm:"column:government_id_number;type:varchar(60)" json:"government_id_number"`
	GovernmentIDPicture  *string `gorm:"column:government_id_picture;type:text" json:"government_id_picture"`

	// Akademik
	UndergraduateUniversityID       *uint `gorm:"column:undergraduate_university_id" json:"undergraduate_university"`
	UndergraduateUniversityIDNumber *string `gorm:"type:varchar(60)" json:"undergraduate_university_id_number"`
	UndergraduateUniversityABID     uint  `gorm:"column:undergraduate_university_ab_id" json:"-"`
	SchoolABID                      uint  `gorm:"column:school_ab_id" json:"-"`
	CollegeABID                     uint  `gorm:"column:college_ab_id" json:"-"`

	UndergraduateUniversityAB *AcademicBackground `gorm:"foreignKey:UndergraduateUniversityABID" json:"undergraduate_university_academic_bg,omitempty"`
	SchoolAB                  *AcademicBackground `gorm:"foreignKey:SchoolABID" json:"school_academic_bg,omitempty"`
	CollegeAB                 *AcademicBackground `gorm:"foreignKey:CollegeABID" json:"college_academic_bg,omitempty"`

	// Teaching preferences
	WantsToTeachOffline             bool          `gorm:"not null;default:false" json:"wants_to_teach_offline"`
	WantsToTeachOnline              bool          `gorm:"not null;default:false" json:"wants_to_teach_online"`
	OfflinePreferredTeachingAreas   pq.Int64Array `gorm:"type:bigint[]" json:"offline_preferred_teaching_areas"`
	OfflinePreferredTeachingSubjects pq.Int64Array `gorm:"type:bigint[]" json:"offline_preferred_teaching_subjects"`
	OnlinePreferredTeachingSubjects pq.Int64Array `gorm:"type:bigint[]" json:"online_preferred_teaching_subjects"`
	OnlineHourlyRate                *int          `json:"online_hourly_rate"`
	Schedule                        pq.BoolArray  `gorm:"type:boolean[]" json:"schedule"`
	ScheduleIsFlexible              bool          `gorm:"not null;default:true" json:"schedule_is_flexible"`
	SalaryRangeStart                *int          `json:"salary_range_start"`
	SalaryRangeEnd                  *int          `json:"salary_range_end"`

	// Completeness (dihitung ulang saat save profil)
	IsPersonalInformationComplete bool `gorm:"not null;default:false" json:"is_personal_information_complete"`
	IsTeachingPreferencesComplete bool `gorm:"not null;default:false" json:"is_teaching_preferences_complete"`

	// Premium
	DateTillPremiumAccountValid time.Time `gorm:"not null;default:'1950-01-01'" json:"date_till_premium_account_valid"`

	// Engagement
	NumberOfPublicProfileViews int        `gorm:"not null;default:0" json:"number_of_public_profile_views"`
	LastAppliedToJobAt         *time.Time `json:"last_applied_to_job_at"`

	// Agregat review
	TutorBehavior       float64 `gorm:"not null;default:0" json:"tutor_behavior"`
	WayOfTeaching       float64 `gorm:"not null;default:0" json:"way_of_teaching"`
	CommunicationSkills float64 `gorm:"not null;default:0" json:"communication_skills"`
	TimeManagement      float64 `gorm:"not null;default:0" json:"time_management"`
	NumberOfReviews     int     `gorm:"not null;default:0" json:"number_of_reviews"`
}

func (Tutor) TableName() string { return "tutors" }

// GetAccountType — premium selama date_till_premium_account_valid di depan.
func (t *Tutor) GetAccountType(now time.Time) string {
	if t.DateTillPremiumAccountValid.After(now) {
		return constants.AccountTypePremium
	}
	return constants.AccountTypeBasic
}

// EmptySchedule — 21 slot (7 hari × 3 sesi), semua false.
func EmptySchedule() pq.BoolArray {
	return make(pq.BoolArray, constants.ScheduleSlots)
}

// RecomputePersonalInformationComplete mengikuti field wajib form personal
// information.
func (t *Tutor) RecomputePersonalInformationComplete() {
	t.IsPersonalInformationComplete = strPresent(t.AcademicMedium) &&
		strPresent(t.Gender) &&
		t.DateOfBirth != nil &&
		strPresent(t.DisplayPicture) &&
		strPresent(t.About) &&
		t.HomeAreaID != nil &&
		strPresent(t.GovernmentIDType) &&
		strPresent(t.GovernmentIDNumber)
}

func (t *Tutor) RecomputeTeachingPreferencesComplete() {
	offlineOK := !t.WantsToTeachOffline ||
		(len(t.OfflinePreferredTeachingAreas) > 0 && len(t.OfflinePreferredTeachingSubjects) > 0)
	onlineOK := !t.WantsToTeachOnline ||
		(len(t.OnlinePreferredTeachingSubjects) > 0 && t.OnlineHourlyRate != nil)
	t.IsTeachingPreferencesComplete = (t.WantsToTeachOffline || t.WantsToTeachOnline) &&
		offlineOK && onlineOK &&
		t.SalaryRangeStart != nil && t.SalaryRangeEnd != nil
}

// IsAcademicBackgroundComplete — tutor BD butuh school+college+university,
// selain itu school+university.
func (t *Tutor) IsAcademicBackgroundComplete() bool {
	if t.UndergraduateUniversityAB == nil || t.SchoolAB == nil {
		return false
	}
	if t.Country == constants.CountryBD {
		if t.CollegeAB == nil {
			return false
		}
		return t.UndergraduateUniversityAB.IsComplete && t.SchoolAB.IsComplete && t.CollegeAB.IsComplete
	}
	return t.UndergraduateUniversityAB.IsComplete && t.SchoolAB.IsComplete
}
