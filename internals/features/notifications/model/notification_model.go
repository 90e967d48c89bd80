// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"
)

// Notification — append-only, tepat satu dari parent/student/tutor terisi.
// Baris ditulis dalam transaksi yang sama dengan perubahan state yang
// dilaporkannya; pengiriman eksternal (SMS/push) jalan setelah commit.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ParentID  *uint `gorm:"index" json:"-"`
	StudentID *uint `gorm:"index" json:"-"`
	TutorID   *uint `gorm:"index" json:"-"`

	NotificationType string `gorm:"type:varchar(40);not null" json:"notification_type"`
	Title            string `gorm:"type:varchar(200);not null" json:"title"`
	Body             string `gorm:"type:text;not null" json:"body"`
	URL              string `gorm:"type:text" json:"url"`

	IsRead bool `gorm:"not null;default:false" json:"is_read"`

	// Outbox delivery state
	SendExternally   bool       `gorm:"not null;default:false" json:"-"`
	SentExternallyAt *time.Time `gorm:"index" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
