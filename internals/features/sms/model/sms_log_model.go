// file: internals/features/sms/model/sms_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SMSLog — satu baris per SMS keluar (OTP, notifikasi, blast ops).
type SMSLog struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	ParentID  *uint `gorm:"index" json:"-"`
	StudentID *uint `gorm:"index" json:"-"`
	TutorID   *uint `gorm:"index" json:"-"`

	PhoneNumber string `gorm:"type:varchar(20);not null" json:"-"`
	Message     string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SMSLog) TableName() string { return "sms_logs" }
