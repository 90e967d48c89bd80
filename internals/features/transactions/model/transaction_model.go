// file: internals/features/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction — catatan pembayaran (upgrade premium dll). created_for
// menunjuk tepat satu jenis user.
type Transaction struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	UUID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();uniqueIndex" json:"uuid"`

	ParentID  *uint `gorm:"index" json:"-"`
	StudentID *uint `gorm:"index" json:"-"`
	TutorID   *uint `gorm:"index" json:"-"`

	CreatedFor string `gorm:"type:varchar(10);not null" json:"created_for"`

	TotalAmount int64  `gorm:"not null" json:"total_amount"`
	Currency    string `gorm:"type:varchar(8);not null;default:'BDT'" json:"currency"`
	TrxID       string `gorm:"column:trx_id;type:varchar(64)" json:"trx_id"`
	OrderID     string `gorm:"column:order_id;type:varchar(64);uniqueIndex" json:"-"`
	Title       string `gorm:"type:varchar(160);not null" json:"title"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'" json:"-"`
	ValidTill   *time.Time `json:"valid_till"`
	VendorName  string `gorm:"type:varchar(40);not null" json:"vendor_name"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
