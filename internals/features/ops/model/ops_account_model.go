// file: internals/features/ops/model/ops_account_model.go
package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// OpsAccount — akun tim internal (operations/admin/activation-manager/
// campus-ambassador). Login username+password, bukan OTP.
type OpsAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(100);not null" json:"-"`

	AccountType string `gorm:"type:varchar(32);not null" json:"account_type"`

	FirstName string  `gorm:"type:varchar(60)" json:"first_name"`
	LastName  string  `gorm:"type:varchar(60)" json:"last_name"`
	Email     *string `gorm:"type:varchar(254)" json:"email"`

	UniversityID *uint   `gorm:"column:university_id" json:"-"`
	Country      *string `gorm:"type:varchar(2)" json:"country"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}

func (OpsAccount) TableName() string { return "ops_accounts" }

func (a *OpsAccount) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

func (a *OpsAccount) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}
