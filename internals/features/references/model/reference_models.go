// file: internals/features/references/model/reference_models.go
package model

// Data referensi (di-seed dari model_data, read-only untuk user biasa)

type Area struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(120);not null" json:"name"`
	City     string `gorm:"type:varchar(80)" json:"city"`
	ZipCode  string `gorm:"type:varchar(16)" json:"zip_code"`
	State    string `gorm:"type:varchar(80)" json:"state"`
	District string `gorm:"type:varchar(80)" json:"district"`
	Division string `gorm:"type:varchar(80)" json:"division"`
	Country  string `gorm:"type:varchar(2);not null;index" json:"country"`
}

func (Area) TableName() string { return "areas" }

type OfflineSubject struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	Category                string  `gorm:"type:varchar(80)" json:"category"`
	SubCategory             string  `gorm:"type:varchar(80)" json:"sub_category"`
	Name                    string  `gorm:"type:varchar(120);not null" json:"name"`
	EnglishMediumCurriculum *string `gorm:"type:varchar(40)" json:"english_medium_curriculum"`
	Country                 string  `gorm:"type:varchar(2);not null;index" json:"country"`
	SubjectType             string  `gorm:"type:varchar(40);index" json:"subject_type"`
}

func (OfflineSubject) TableName() string { return "offline_subjects" }

type OnlineSubject struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	Category                string  `gorm:"type:varchar(80)" json:"category"`
	SubCategory             string  `gorm:"type:varchar(80)" json:"sub_category"`
	Name                    string  `gorm:"type:varchar(120);not null" json:"name"`
	EnglishMediumCurriculum *string `gorm:"type:varchar(40)" json:"english_medium_curriculum"`
	Country                 string  `gorm:"type:varchar(2);not null;index" json:"country"`
	SubjectType             string  `gorm:"type:varchar(40);index" json:"subject_type"`
}

func (OnlineSubject) TableName() string { return "online_subjects" }

type School struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(160);not null" json:"name"`
	Country string `gorm:"type:varchar(2);not null;index" json:"country"`
}

func (School) TableName() string { return "schools" }

type University struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(160);not null" json:"name"`
	Grade   *int   `json:"-"`
	Country string `gorm:"type:varchar(2);not null;index" json:"country"`
}

func (University) TableName() string { return "universities" }

type UniversityFieldOfStudy struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(120);not null" json:"name"`
}

func (UniversityFieldOfStudy) TableName() string { return "university_fields_of_study" }

type UniversityDegree struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(120);not null" json:"name"`
}

func (UniversityDegree) TableName() string { return "university_degrees" }
