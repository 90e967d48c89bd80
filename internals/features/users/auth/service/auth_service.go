// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	smsService "yoda_backend/internals/features/sms/service"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
)

var ErrUnknownUserType = errors.New("unknown user type")

// tableForUserType — nama tabel per tipe user, dipakai update kolom OTP.
func tableForUserType(userType string) string {
	switch userType {
	case constants.UserTypeParent:
		return "parents"
	case constants.UserTypeStudent:
		return "students"
	case constants.UserTypeTutor:
		return "tutors"
	}
	return ""
}

// loadActiveByPhone — user hidup (tidak suspended/deleted) per nomor.
func loadActiveByPhone(db *gorm.DB, userType, phoneNumber string) (*userModel.UserCommon, smsService.UserRef, error) {
	var ref smsService.UserRef

	q := func(dest interface{}) error {
		return db.
			Where("phone_number = ? AND is_suspended_by_ops = FALSE AND is_deleted = FALSE", phoneNumber).
			First(dest).Error
	}

	switch userType {
	case constants.UserTypeParent:
		var parent userModel.Parent
		if err := q(&parent); err != nil {
			return nil, ref, err
		}
		ref.ParentID = &parent.ID
		return &parent.UserCommon, ref, nil
	case constants.UserTypeStudent:
		var student userModel.Student
		if err := q(&student); err != nil {
			return nil, ref, err
		}
		ref.StudentID = &student.ID
		return &student.UserCommon, ref, nil
	case constants.UserTypeTutor:
		var tutor userModel.Tutor
		if err := q(&tutor); err != nil {
			return nil, ref, err
		}
		ref.TutorID = &tutor.ID
		return &tutor.UserCommon, ref, nil
	}
	return nil, ref, ErrUnknownUserType
}

// SendLoginOTP — set OTP baru di user lalu kirim SMS. Nomor yang tidak
// terdaftar jatuh sebagai record not found (404), tidak dibedakan.
func SendLoginOTP(db *gorm.DB, userType, country, rawPhone string) error {
	phone, err := helper.NormalizePhoneNumber(country, rawPhone)
	if err != nil {
		return err
	}

	u, ref, err := loadActiveByPhone(db, userType, phone)
	if err != nil {
		return err
	}

	otp := u.SetOTP()
	if err := db.Table(tableForUserType(userType)).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{"otp": otp, "otp_set_at": *u.OTPSetAt}).Error; err != nil {
		return err
	}

	SendOTPSMS(db, country, phone, otp, ref)
	return nil
}

// SendOTPSMS — dipakai flow sign-up juga, makanya dipisah.
func SendOTPSMS(db *gorm.DB, country, phone, otp string, ref smsService.UserRef) {
	message := fmt.Sprintf("%s is your Yoda verification code. It expires in %d minutes.", otp, constants.OTPTTLMinutes)
	smsService.SendSMS(db, country, phone, message, ref)
}

// ConfirmLoginOTP — OTP cocok & belum kedaluwarsa → bersihkan OTP, tandai
// nomor terverifikasi, terbitkan JWT. OTP salah juga jatuh 404.
func ConfirmLoginOTP(db *gorm.DB, userType, country, rawPhone, otp string, now time.Time) (string, *userModel.UserCommon, error) {
	phone, err := helper.NormalizePhoneNumber(country, rawPhone)
	if err != nil {
		return "", nil, err
	}

	u, _, err := loadActiveByPhone(db, userType, phone)
	if err != nil {
		return "", nil, err
	}
	if !u.OTPValid(otp, now) {
		return "", nil, gorm.ErrRecordNotFound
	}

	updates := map[string]interface{}{
		"otp":                      nil,
		"otp_set_at":               nil,
		"is_phone_number_verified": true,
	}
	if daily := u.ActiveDailyUpdates(now); daily != nil {
		for k, v := range daily {
			updates[k] = v
		}
	}
	if err := db.Table(tableForUserType(userType)).
		Where("id = ?", u.ID).
		Updates(updates).Error; err != nil {
		return "", nil, err
	}
	u.OTP, u.OTPSetAt = nil, nil
	u.IsPhoneNumberVerified = true

	token, err := helper.CreateUserToken(u.UUID, userType)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ExpireStaleOTPs — dipanggil scheduler: kosongkan OTP yang lewat TTL
// supaya tidak ada kode nyangkut di DB.
func ExpireStaleOTPs(db *gorm.DB) {
	cutoff := time.Now().UTC().Add(-constants.OTPTTLMinutes * time.Minute)
	for _, table := range []string{"parents", "students", "tutors"} {
		if err := db.Table(table).
			Where("otp IS NOT NULL AND otp_set_at < ?", cutoff).
			Updates(map[string]interface{}{"otp": nil, "otp_set_at": nil}).Error; err != nil {
			log.Printf("[ERROR] Gagal bersihkan OTP kedaluwarsa di %s: %v", table, err)
		}
	}
}
