package model

// AcademicBackground — satu record per jenjang (school/college/university).
// Tutor memegang tiga FK, satu per institution_type.
type AcademicBackground struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InstitutionType string  `gorm:"type:varchar(32);not null" json:"institution_type"`
	Country         *string `gorm:"type:varchar(2)" json:"country"`

	NameOfInstitution *string `gorm:"type:varchar(160)" json:"name_of_institution"`
	NameOfDegree      *string `gorm:"type:varchar(120)" json:"name_of_degree"`
	FieldOfStudy      *string `gorm:"type:varchar(120)" json:"field_of_study"`

	Medium                  *string `gorm:"type:varchar(40)" json:"medium"`
	BanglaMediumVersion     *string `gorm:"type:varchar(40)" json:"bangla_medium_version"`
	EnglishMediumCurriculum *string `gorm:"type:varchar(40)" json:"english_medium_curriculum"`

	StartYear *int `json:"start_year"`
	EndYear   *int `json:"end_year"`

	IdentificationDocumentPicture *string `gorm:"type:text" json:"identification_document_picture"`

	IsComplete bool `gorm:"not null;default:false" json:"is_complete"`
}

func (AcademicBackground) TableName() string { return "academic_backgrounds" }

// RecomputeComplete — lengkap bila institusi, medium, dan rentang tahun
// sudah terisi.
func (ab *AcademicBackground) RecomputeComplete() {
	ab.IsComplete = strPresent(ab.NameOfInstitution) &&
		strPresent(ab.Medium) &&
		ab.StartYear != nil && ab.EndYear != nil
}

func strPresent(s *string) bool { return s != nil && *s != "" }
