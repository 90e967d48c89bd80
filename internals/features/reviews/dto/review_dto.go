// file: internals/features/reviews/dto/review_dto.go
package dto

// CreateReviewRequest — empat rating wajib, skala 1-5.
type CreateReviewRequest struct {
	TutorBehavior       int `json:"tutor_behavior" validate:"required,min=1,max=5"`
	WayOfTeaching       int `json:"way_of_teaching" validate:"required,min=1,max=5"`
	CommunicationSkills int `json:"communication_skills" validate:"required,min=1,max=5"`
	TimeManagement      int `json:"time_management" validate:"required,min=1,max=5"`
}
