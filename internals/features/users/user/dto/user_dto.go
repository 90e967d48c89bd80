// file: internals/features/users/user/dto/user_dto.go
package dto

// UpdateDetailsRequest — profil dasar parent/student (multipart; field
// kosong = tidak diubah).
type UpdateDetailsRequest struct {
	FullName    *string `form:"full_name" json:"full_name" validate:"omitempty,max=120"`
	Gender      *string `form:"gender" json:"gender" validate:"omitempty,oneof=male female other"`
	Email       *string `form:"email" json:"email" validate:"omitempty,email"`
	DateOfBirth *string `form:"date_of_birth" json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// TutorPersonalInformationRequest — form personal information tutor.
// display_picture & government_id_picture dikirim sebagai file.
type TutorPersonalInformationRequest struct {
	FullName             *string `form:"full_name" json:"full_name" validate:"omitempty,max=120"`
	AcademicMedium       *string `form:"academic_medium" json:"academic_medium" validate:"omitempty,max=40"`
	AcademicFieldOfStudy *string `form:"academic_field_of_study" json:"academic_field_of_study" validate:"omitempty,max=120"`
	Gender               *string `form:"gender" json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth          *string `form:"date_of_birth" json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	About                *string `form:"about" json:"about"`
	HomeAreaID           *uint   `form:"home_area" json:"home_area"`
	GovernmentIDType     *string `form:"government_id_type" json:"government_id_type" validate:"omitempty,max=40"`
	GovernmentIDNumber   *string `form:"government_id_number" json:"government_id_number" validate:"omitempty,max=60"`
	Email                *string `form:"email" json:"email" validate:"omitempty,email"`
}

// TutorTeachingPreferencesRequest — form teaching preferences. Schedule
// harus tepat 21 slot (7 hari × 3 sesi).
type TutorTeachingPreferencesRequest struct {
	WantsToTeachOffline              *bool   `json:"wants_to_teach_offline"`
	WantsToTeachOnline               *bool   `json:"wants_to_teach_online"`
	OfflinePreferredTeachingAreas    []int64 `json:"offline_preferred_teaching_areas"`
	OfflinePreferredTeachingSubjects []int64 `json:"offline_preferred_teaching_subjects"`
	OnlinePreferredTeachingSubjects  []int64 `json:"online_preferred_teaching_subjects"`
	OnlineHourlyRate                 *int    `json:"online_hourly_rate" validate:"omitempty,min=0"`
	Schedule                         []bool  `json:"schedule" validate:"omitempty,len=21"`
	ScheduleIsFlexible               *bool   `json:"schedule_is_flexible"`
	SalaryRangeStart                 *int    `json:"salary_range_start" validate:"omitempty,min=0"`
	SalaryRangeEnd                   *int    `json:"salary_range_end" validate:"omitempty,min=0"`
}

// TutorAcademicBackgroundRequest — satu record per jenjang; jenjang
// dipilih lewat institution_type.
type TutorAcademicBackgroundRequest struct {
	InstitutionType string `form:"institution_type" json:"institution_type" validate:"required,oneof=school college undergraduate-university"`

	NameOfInstitution *string `form:"name_of_institution" json:"name_of_institution" validate:"omitempty,max=160"`
	NameOfDegree      *string `form:"name_of_degree" json:"name_of_degree" validate:"omitempty,max=120"`
	FieldOfStudy      *string `form:"field_of_study" json:"field_of_study" validate:"omitempty,max=120"`

	Medium                  *string `form:"medium" json:"medium" validate:"omitempty,max=40"`
	BanglaMediumVersion     *string `form:"bangla_medium_version" json:"bangla_medium_version" validate:"omitempty,max=40"`
	EnglishMediumCurriculum *string `form:"english_medium_curriculum" json:"english_medium_curriculum" validate:"omitempty,max=40"`

	StartYear *int `form:"start_year" json:"start_year" validate:"omitempty,min=1950,max=2100"`
	EndYear   *int `form:"end_year" json:"end_year" validate:"omitempty,min=1950,max=2100"`
}

// TutorFilterRequest — filter pencarian tutor oleh parent.
type TutorFilterRequest struct {
	Gender                    *string `json:"gender" validate:"omitempty,oneof=male female other"`
	TeachingAreaID            *int64  `json:"teaching_area"`
	TeachingSubjectID         *int64  `json:"teaching_subject"`
	AcademicMedium            *string `json:"academic_medium" validate:"omitempty,max=40"`
	UndergraduateUniversityID *uint   `json:"undergraduate_university"`
	SalaryMax                 *int    `json:"salary_max" validate:"omitempty,min=0"`
	WantsToTeachOnline        *bool   `json:"wants_to_teach_online"`
}
