// file: internals/features/transactions/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoda_backend/internals/constants"
	notifService "yoda_backend/internals/features/notifications/service"
	trxModel "yoda_backend/internals/features/transactions/model"
	userModel "yoda_backend/internals/features/users/user/model"
)

// HandlePaymentStatusWebhook dipanggil saat Midtrans kirim notifikasi
// status. settlement/capture = aktifkan premium; webhook ulang untuk
// transaksi yang sudah paid tidak menggeser masa berlaku lagi.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}
	trxID, _ := body["transaction_id"].(string)

	log.Printf("[INFO] Webhook pembayaran: order_id=%s status=%s", orderID, status)

	var notifID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var record trxModel.Transaction
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", orderID).
			First(&record).Error; err != nil {
			return fmt.Errorf("transaction with order_id %s not found", orderID)
		}

		switch status {
		case "capture", "settlement":
			if record.Status == "paid" {
				return nil
			}
			id, err := applySettlement(tx, &record, trxID, time.Now().UTC())
			if err != nil {
				return err
			}
			notifID = id

		case "expire":
			return tx.Model(&record).Update("status", "expired").Error
		case "cancel", "deny":
			return tx.Model(&record).Update("status", "canceled").Error
		default:
			log.Println("[INFO] Status webhook tidak diproses:", status)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if notifID != 0 {
		notifService.Enqueue(notifID)
	}
	return nil
}

// applySettlement — aktifkan premium untuk transaksi yang baru dibayar.
// Baris tanpa tutor (mis. transaksi impor dari sistem lama) ditolak di
// sini, bukan panic saat dereferensi FK.
func applySettlement(tx *gorm.DB, record *trxModel.Transaction, trxID string, now time.Time) (uint, error) {
	if record.TutorID == nil {
		return 0, fmt.Errorf("transaction %s has no tutor attached", record.OrderID)
	}

	var tutor userModel.Tutor
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tutor, *record.TutorID).Error; err != nil {
		return 0, err
	}
	validTill := premiumBase(&tutor, now).AddDate(0, 0, constants.PremiumUpgradeDays)
	if err := tx.Model(&tutor).
		Update("date_till_premium_account_valid", validTill).Error; err != nil {
		return 0, err
	}

	if err := tx.Model(record).Updates(map[string]interface{}{
		"status":     "paid",
		"trx_id":     trxID,
		"valid_till": validTill,
	}).Error; err != nil {
		return 0, err
	}

	return notifService.CreateInTx(tx, notifService.NotifyInput{
		TutorID:          record.TutorID,
		NotificationType: constants.NotificationPremiumActivated,
		Title:            "Premium activated",
		Body:             fmt.Sprintf("Payment received. Your premium account is active until %s.", validTill.Format("2 January 2006")),
		URL:              "/tutor/premium",
		SendExternally:   true,
	})
}
