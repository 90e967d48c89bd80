// file: internals/features/jobs/tuition_requests/model/tuition_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TuitionRequest — job antara satu parent dan satu tutor. Status berjalan
// monoton: direct-request/hot-job → in-process → waiting-for-* → confirmed.
// Flag rejection ortogonal terhadap status dan terminal.
type TuitionRequest struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	Status            string `gorm:"type:varchar(24);not null;index" json:"status"`
	JobOrigin         string `gorm:"type:varchar(24);not null" json:"job_origin"`
	IsRejectedByTutor bool   `gorm:"not null;default:false" json:"is_rejected_by_tutor"`
	IsRejectedByOps   bool   `gorm:"not null;default:false" json:"is_rejected_by_ops"`

	ParentID uint `gorm:"not null;index" json:"parent"`
	TutorID  uint `gorm:"not null;index;uniqueIndex:idx_rft_tutor,where:parent_rft_id IS NOT NULL" json:"tutor"`

	// Back-reference ke RFT asal (hanya untuk hot job). Unik per (rft, tutor)
	// supaya promosi ganda ketahan di DB.
	ParentRFTID *uint `gorm:"column:parent_rft_id;uniqueIndex:idx_rft_tutor,where:parent_rft_id IS NOT NULL" json:"parent_rft"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	Country   string    `gorm:"type:varchar(2);not null;index" json:"country"`

	NoteByParent *string `gorm:"type:text" json:"note_by_parent"`

	// Tentang murid (dicopy dari form direct request atau dari RFT)
	StudentGender                  *string `gorm:"type:varchar(10)" json:"student_gender"`
	StudentSchool                  *string `gorm:"type:varchar(160)" json:"student_school"`
	StudentClass                   *string `gorm:"type:varchar(40)" json:"student_class"`
	StudentMedium                  *string `gorm:"type:varchar(40)" json:"student_medium"`
	StudentBanglaMediumVersion     *string `gorm:"type:varchar(40)" json:"student_bangla_medium_version"`
	StudentEnglishMediumCurriculum *string `gorm:"type:varchar(40)" json:"student_english_medium_curriculum"`

	TuitionAreaID           *uint         `gorm:"column:tuition_area_id" json:"tuition_area"`
	TeachingPlacePreference *string       `gorm:"type:varchar(40)" json:"teaching_place_preference"`
	NumberOfDaysPerWeek     *int          `json:"number_of_days_per_week"`
	Salary                  *int          `json:"salary"`
	IsSalaryNegotiable      bool          `gorm:"not null;default:true" json:"is_salary_negotiable"`
	SubjectIDs              pq.Int64Array `gorm:"column:subject_ids;type:bigint[]" json:"subjects"`

	ConfirmationDate *time.Time `json:"confirmation_date"`

	FindSimilarTutorsForParent bool `gorm:"not null;default:false" json:"find_similar_tutors_for_parent"`
	// false saat parent belum diverifikasi ops pada waktu create; ops
	// verification mem-backfill notifikasi tutor untuk baris pending ini
	NotificationCreated    bool `gorm:"not null;default:true" json:"notification_created"`
	ShowTutorsPhoneNumber  bool `gorm:"not null;default:false" json:"show_tutors_phone_number"`

	ReviewID *uint `gorm:"column:review_id" json:"review"`

	OpsNotes datatypes.JSON `gorm:"type:jsonb;not null;default:'{\"notes\": []}'" json:"ops_notes"`
}

func (TuitionRequest) TableName() string { return "tuition_requests" }
