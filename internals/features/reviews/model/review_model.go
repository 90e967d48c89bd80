// file: internals/features/reviews/model/review_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Review — satu per tuition request yang sudah confirmed. Empat rating 1-5;
// agregat tutor di-update saat create.
type Review struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	ParentID         uint `gorm:"not null;index" json:"parent"`
	TutorID          uint `gorm:"not null;index" json:"tutor"`
	TuitionRequestID uint `gorm:"not null;uniqueIndex" json:"tuition_request"`

	TutorBehavior       int `gorm:"not null" json:"tutor_behavior"`
	WayOfTeaching       int `gorm:"not null" json:"way_of_teaching"`
	CommunicationSkills int `gorm:"not null" json:"communication_skills"`
	TimeManagement      int `gorm:"not null" json:"time_management"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
