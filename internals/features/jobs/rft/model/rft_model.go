// file: internals/features/jobs/rft/model/rft_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// RequestForTutor — job post terbuka milik parent. Dipromosikan ops jadi
// hot job (TuitionRequest) ke tutor tertentu.
type RequestForTutor struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	ParentID  uint      `gorm:"not null;index" json:"parent"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	Country   string    `gorm:"type:varchar(2);not null;index" json:"country"`

	NoteByParent *string `gorm:"type:text" json:"note_by_parent"`

	// Tentang murid
	StudentGender                  *string `gorm:"type:varchar(10)" json:"student_gender"`
	StudentSchool                  *string `gorm:"type:varchar(160)" json:"student_school"`
	StudentClass                   *string `gorm:"type:varchar(40)" json:"student_class"`
	StudentMedium                  *string `gorm:"type:varchar(40)" json:"student_medium"`
	StudentBanglaMediumVersion     *string `gorm:"type:varchar(40)" json:"student_bangla_medium_version"`
	StudentEnglishMediumCurriculum *string `gorm:"type:varchar(40)" json:"student_english_medium_curriculum"`

	// Tuition
	TuitionAreaID           *uint         `gorm:"column:tuition_area_id" json:"tuition_area"`
	TeachingPlacePreference *string       `gorm:"type:varchar(40)" json:"teaching_place_preference"`
	NumberOfDaysPerWeek     *int          `json:"number_of_days_per_week"`
	Salary                  *int          `json:"salary"`
	IsSalaryNegotiable      bool          `gorm:"not null;default:true" json:"is_salary_negotiable"`
	SubjectIDs              pq.Int64Array `gorm:"column:subject_ids;type:bigint[]" json:"subjects"`

	// Preferensi tutor
	TutorGender                 *string `gorm:"type:varchar(10)" json:"tutor_gender"`
	TutorUndergraduateUniversityID *uint `gorm:"column:tutor_undergraduate_university_id" json:"tutor_undergraduate_university"`
	TutorAcademicMedium         *string `gorm:"type:varchar(40)" json:"tutor_academic_medium"`
	TutorAcademicFieldOfStudy   *string `gorm:"type:varchar(120)" json:"tutor_academic_field_of_study"`

	// Flip sekali saat salah satu TuitionRequest terkait confirmed
	IsConfirmed      bool       `gorm:"not null;default:false" json:"is_confirmed"`
	ConfirmationDate *time.Time `json:"confirmation_date"`

	IsRejectedByOps bool           `gorm:"not null;default:false" json:"is_rejected_by_ops"`
	OpsNotes        datatypes.JSON `gorm:"type:jsonb;not null;default:'{\"notes\": []}'" json:"ops_notes"`
}

func (RequestForTutor) TableName() string { return "requests_for_tutor" }
