// file: internals/features/transactions/service/premium_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoda_backend/internals/constants"
	notifService "yoda_backend/internals/features/notifications/service"
	trxModel "yoda_backend/internals/features/transactions/model"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
)

var ErrNotEnoughPoints = errors.New("not enough points")

const VendorPoints = "points"
const VendorMidtrans = "midtrans"

// premiumBase — perpanjangan menumpuk di atas sisa premium, bukan reset.
func premiumBase(tutor *userModel.Tutor, now time.Time) time.Time {
	if tutor.DateTillPremiumAccountValid.After(now) {
		return tutor.DateTillPremiumAccountValid
	}
	return now
}

// UpgradeTutorWithPoints — tukar poin dengan premium. Poin dipotong dan
// masa berlaku digeser dalam satu transaksi; catatan transaksi ikut
// ditulis supaya muncul di riwayat tutor.
func UpgradeTutorWithPoints(db *gorm.DB, tutorID uint, now time.Time) (*userModel.Tutor, error) {
	var tutor userModel.Tutor
	var notifID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tutor, tutorID).Error; err != nil {
			return err
		}
		if tutor.Points < constants.PremiumUpgradePointsCost {
			return ErrNotEnoughPoints
		}

		validTill := premiumBase(&tutor, now).AddDate(0, 0, constants.PremiumUpgradeDays)
		if err := tx.Model(&tutor).Updates(map[string]interface{}{
			"points":                          tutor.Points - constants.PremiumUpgradePointsCost,
			"date_till_premium_account_valid": validTill,
		}).Error; err != nil {
			return err
		}
		tutor.Points -= constants.PremiumUpgradePointsCost
		tutor.DateTillPremiumAccountValid = validTill

		record := trxModel.Transaction{
			TutorID:     &tutor.ID,
			CreatedFor:  constants.UserTypeTutor,
			TotalAmount: 0,
			Title:       fmt.Sprintf("Premium upgrade (%d points)", constants.PremiumUpgradePointsCost),
			Status:      "paid",
			ValidTill:   &validTill,
			VendorName:  VendorPoints,
			OrderID:     fmt.Sprintf("points-%d-%d", tutor.ID, now.UnixNano()),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			TutorID:          &tutor.ID,
			NotificationType: constants.NotificationPremiumActivated,
			Title:            "Premium activated",
			Body:             fmt.Sprintf("Your premium account is active until %s.", validTill.Format("2 January 2006")),
			URL:              "/tutor/premium",
			SendExternally:   true,
		})
		if err != nil {
			return err
		}
		notifID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifService.Enqueue(notifID)
	if tutor.Email != nil {
		go helper.SendEmail(*tutor.Email,
			"Your Yoda premium is active",
			fmt.Sprintf("Your premium account is active until %s.", tutor.DateTillPremiumAccountValid.Format("2 January 2006")))
	}
	return &tutor, nil
}

// OpsUpgradeTutor — ops set premium sampai tanggal eksplisit (komp /
// pembayaran manual di luar gateway).
func OpsUpgradeTutor(db *gorm.DB, tutorUUID string, validTill time.Time, opsUsername string) (*userModel.Tutor, error) {
	var tutor userModel.Tutor
	var notifID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uuid = ? AND is_deleted = FALSE", tutorUUID).
			First(&tutor).Error; err != nil {
			return err
		}

		if err := tx.Model(&tutor).
			Update("date_till_premium_account_valid", validTill).Error; err != nil {
			return err
		}
		tutor.DateTillPremiumAccountValid = validTill

		record := trxModel.Transaction{
			TutorID:     &tutor.ID,
			CreatedFor:  constants.UserTypeTutor,
			TotalAmount: 0,
			Title:       "Premium upgrade by ops (" + opsUsername + ")",
			Status:      "paid",
			ValidTill:   &validTill,
			VendorName:  "ops",
			OrderID:     fmt.Sprintf("ops-%d-%d", tutor.ID, time.Now().UnixNano()),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			TutorID:          &tutor.ID,
			NotificationType: constants.NotificationPremiumActivated,
			Title:            "Premium activated",
			Body:             fmt.Sprintf("Your premium account is active until %s.", validTill.Format("2 January 2006")),
			URL:              "/tutor/premium",
			SendExternally:   true,
		})
		if err != nil {
			return err
		}
		notifID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifService.Enqueue(notifID)
	return &tutor, nil
}

// CreatePremiumPaymentTransaction — baris pending + snap token; premium
// baru aktif saat webhook settlement masuk.
func CreatePremiumPaymentTransaction(db *gorm.DB, tutor *userModel.Tutor, now time.Time) (*trxModel.Transaction, string, error) {
	record := trxModel.Transaction{
		TutorID:     &tutor.ID,
		CreatedFor:  constants.UserTypeTutor,
		TotalAmount: constants.PremiumUpgradePriceBDT,
		Title:       fmt.Sprintf("Premium upgrade (%d days)", constants.PremiumUpgradeDays),
		VendorName:  VendorMidtrans,
		OrderID:     fmt.Sprintf("premium-%d-%d", tutor.ID, now.UnixNano()),
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, "", err
	}

	var email string
	if tutor.Email != nil {
		email = *tutor.Email
	}
	token, err := GenerateSnapToken(record, tutor.FullName, email)
	if err != nil {
		return nil, "", err
	}
	return &record, token, nil
}
