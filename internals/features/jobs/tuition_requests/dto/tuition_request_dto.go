// file: internals/features/jobs/tuition_requests/dto/tuition_request_dto.go
package dto

// CreateDirectRequestRequest — parent kirim request langsung ke tutor
// yang dia pilih dari hasil filter.
type CreateDirectRequestRequest struct {
	NoteByParent *string `json:"note_by_parent"`

	StudentGender                  *string `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentSchool                  *string `json:"student_school" validate:"omitempty,max=160"`
	StudentClass                   *string `json:"student_class" validate:"omitempty,max=40"`
	StudentMedium                  *string `json:"student_medium" validate:"omitempty,max=40"`
	StudentBanglaMediumVersion     *string `json:"student_bangla_medium_version" validate:"omitempty,max=40"`
	StudentEnglishMediumCurriculum *string `json:"student_english_medium_curriculum" validate:"omitempty,max=40"`

	TuitionAreaID           *uint   `json:"tuition_area"`
	TeachingPlacePreference *string `json:"teaching_place_preference" validate:"omitempty,max=40"`
	NumberOfDaysPerWeek     *int    `json:"number_of_days_per_week" validate:"omitempty,min=1,max=7"`
	Salary                  *int    `json:"salary" validate:"omitempty,min=0"`
	IsSalaryNegotiable      *bool   `json:"is_salary_negotiable"`
	SubjectIDs              []int64 `json:"subjects"`

	FindSimilarTutorsForParent *bool `json:"find_similar_tutors_for_parent"`
}
