// file: internals/seeds/ops/seed_ops_accounts.go
package ops

import (
	"log"
	"os"

	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	opsModel "yoda_backend/internals/features/ops/model"
)

// SeedAdminAccount bikin akun admin pertama dari env. Kalau username
// sudah ada, tidak disentuh.
func SeedAdminAccount(db *gorm.DB) {
	username := os.Getenv("OPS_ADMIN_USERNAME")
	password := os.Getenv("OPS_ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("⏭️  OPS_ADMIN_USERNAME/PASSWORD kosong, skip seed admin")
		return
	}

	var count int64
	if err := db.Model(&opsModel.OpsAccount{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek ops account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	account := opsModel.OpsAccount{
		Username:    username,
		AccountType: constants.OpsAccountAdmin,
		FirstName:   "Admin",
	}
	if err := account.SetPassword(password); err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}
	if err := db.Create(&account).Error; err != nil {
		log.Printf("❌ Gagal insert admin: %v", err)
		return
	}
	log.Printf("✅ Seed ops admin %q", username)
}
