// file: internals/features/users/user/model/user_common.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	helper "yoda_backend/internals/helpers"
)

// UserCommon — kolom yang sama untuk parent, student, dan tutor
// (di-embed, GORM meratakan kolomnya ke masing-masing tabel).
type UserCommon struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	FullName              string  `gorm:"type:varchar(120);not null" json:"full_name"`
	PhoneNumber           string  `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone_number"`
	IsPhoneNumberVerified bool    `gorm:"not null;default:false" json:"is_phone_number_verified"`
	Country               string  `gorm:"type:varchar(2);not null;default:'BD'" json:"country"`
	Gender                *string `gorm:"type:varchar(10)" json:"gender"`
	Email                 *string `gorm:"type:varchar(254)" json:"email"`
	IsEmailVerified       bool    `gorm:"not null;default:false" json:"is_email_verified"`
	Points                int     `gorm:"not null;default:0" json:"points"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth"`
	DisplayPicture        *string    `gorm:"type:text" json:"display_picture"`

	IsSocialMediaConnected bool    `gorm:"not null;default:false" json:"is_social_media_connected"`
	NameInSocialMedia      *string `gorm:"type:varchar(120)" json:"name_in_social_media"`

	IsVerifiedByOps  bool `gorm:"not null;default:false" json:"is_verified_by_ops"`
	IsSuspendedByOps bool `gorm:"not null;default:false" json:"is_suspended_by_ops"`
	IsDeleted        bool `gorm:"not null;default:false" json:"is_deleted"`

	SignUpDate   time.Time  `gorm:"not null;autoCreateTime" json:"sign_up_date"`
	LastActiveAt *time.Time `json:"last_active_at"`

	OpsNotes datatypes.JSON `gorm:"type:jsonb;not null;default:'{\"notes\": []}'" json:"ops_notes"`

	OTP          *string    `gorm:"type:varchar(10)" json:"-"`
	OTPSetAt     *time.Time `json:"-"`
	MobileUserID *string    `gorm:"type:varchar(64)" json:"-"`
}

// SetOTP mengisi OTP baru + timestamp-nya. Belum disimpan ke DB.
func (u *UserCommon) SetOTP() string {
	otp := helper.GenerateOTP(constants.OTPDigits)
	now := time.Now().UTC()
	u.OTP = &otp
	u.OTPSetAt = &now
	return otp
}

// OTPValid mengecek OTP cocok dan belum kedaluwarsa.
func (u *UserCommon) OTPValid(otp string, now time.Time) bool {
	if u.OTP == nil || u.OTPSetAt == nil || otp == "" {
		return false
	}
	if now.Sub(*u.OTPSetAt) > constants.OTPTTLMinutes*time.Minute {
		return false
	}
	return *u.OTP == otp
}

// ActiveDailyUpdates — last_active_at dinaikkan maksimal sekali per hari
// UTC. Return kolom yang perlu di-update (nil kalau tidak perlu save).
func (u *UserCommon) ActiveDailyUpdates(now time.Time) map[string]interface{} {
	now = now.UTC()
	if u.LastActiveAt != nil {
		y1, m1, d1 := u.LastActiveAt.UTC().Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return nil
		}
	}
	u.LastActiveAt = &now
	return map[string]interface{}{"last_active_at": now}
}

// AppendOpsNote menambah catatan ops ke JSON {"notes": [...]}.
func AppendOpsNote(db *gorm.DB, table string, id uint, author, note string) error {
	entry := map[string]interface{}{
		"author":     author,
		"note":       note,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	return db.Table(table).
		Where("id = ?", id).
		Update("ops_notes", gorm.Expr(
			`jsonb_set(ops_notes, '{notes}', (ops_notes->'notes') || ?::jsonb)`,
			datatypes.JSONMap(entry),
		)).Error
}
