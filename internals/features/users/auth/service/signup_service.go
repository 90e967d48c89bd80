// file: internals/features/users/auth/service/signup_service.go
package service

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	dto "yoda_backend/internals/features/users/auth/dto"
	smsService "yoda_backend/internals/features/sms/service"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
)

var ErrPhoneNumberTaken = errors.New("phone number already registered")

func asPhoneTaken(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrPhoneNumberTaken
	}
	return err
}

// SignUpParent — bikin akun parent + kirim OTP pertama. byOps=true untuk
// akun yang dibikin tim ops: langsung verified, tanpa OTP.
func SignUpParent(db *gorm.DB, in dto.SignUpRequest, byOps bool) (*userModel.Parent, error) {
	phone, err := helper.NormalizePhoneNumber(in.Country, in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	parent := userModel.Parent{
		UserCommon: userModel.UserCommon{
			FullName:        in.FullName,
			PhoneNumber:     phone,
			Country:         in.Country,
			Gender:          in.Gender,
			Email:           in.Email,
			IsVerifiedByOps: byOps,
		},
	}

	var otp string
	if !byOps {
		otp = parent.SetOTP()
	}
	if err := db.Create(&parent).Error; err != nil {
		return nil, asPhoneTaken(err)
	}
	if otp != "" {
		SendOTPSMS(db, in.Country, phone, otp, smsRefParent(parent.ID))
	}
	return &parent, nil
}

// SignUpStudent — sama dengan parent.
func SignUpStudent(db *gorm.DB, in dto.SignUpRequest, byOps bool) (*userModel.Student, error) {
	phone, err := helper.NormalizePhoneNumber(in.Country, in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	student := userModel.Student{
		UserCommon: userModel.UserCommon{
			FullName:        in.FullName,
			PhoneNumber:     phone,
			Country:         in.Country,
			Gender:          in.Gender,
			Email:           in.Email,
			IsVerifiedByOps: byOps,
		},
	}

	var otp string
	if !byOps {
		otp = student.SetOTP()
	}
	if err := db.Create(&student).Error; err != nil {
		return nil, asPhoneTaken(err)
	}
	if otp != "" {
		SendOTPSMS(db, in.Country, phone, otp, smsRefStudent(student.ID))
	}
	return &student, nil
}

// SignUpTutor — bikin tutor + tiga record academic background kosong +
// slug unik dari nama, dalam satu transaksi. Channel activation dapat
// premium perkenalan.
func SignUpTutor(db *gorm.DB, in dto.TutorSignUpRequest, channel string, now time.Time) (*userModel.Tutor, error) {
	phone, err := helper.NormalizePhoneNumber(in.Country, in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	tutor := userModel.Tutor{
		UserCommon: userModel.UserCommon{
			FullName:    in.FullName,
			PhoneNumber: phone,
			Country:     in.Country,
			Gender:      in.Gender,
			Email:       in.Email,
		},
		SignUpChannel:             channel,
		UndergraduateUniversityID: in.UndergraduateUniversityID,
		Schedule:                  userModel.EmptySchedule(),
	}
	if channel == constants.SignUpChannelActivation {
		tutor.DateTillPremiumAccountValid = now.AddDate(0, 0, constants.PremiumUpgradeDays)
	}

	otp := tutor.SetOTP()

	err = db.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueTutorSlug(tx, helper.Slugify(in.FullName, 100))
		if err != nil {
			return err
		}
		tutor.Slug = &slug

		for _, institutionType := range []string{
			constants.InstitutionUniversity,
			constants.InstitutionSchool,
			constants.InstitutionCollege,
		} {
			ab := userModel.AcademicBackground{
				InstitutionType: institutionType,
				Country:         &in.Country,
			}
			if err := tx.Create(&ab).Error; err != nil {
				return err
			}
			switch institutionType {
			case constants.InstitutionUniversity:
				tutor.UndergraduateUniversityABID = ab.ID
			case constants.InstitutionSchool:
				tutor.SchoolABID = ab.ID
			case constants.InstitutionCollege:
				tutor.CollegeABID = ab.ID
			}
		}

		if err := tx.Create(&tutor).Error; err != nil {
			return asPhoneTaken(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SendOTPSMS(db, in.Country, phone, otp, smsRefTutor(tutor.ID))
	return &tutor, nil
}

func smsRefParent(id uint) (ref smsService.UserRef)  { ref.ParentID = &id; return }
func smsRefStudent(id uint) (ref smsService.UserRef) { ref.StudentID = &id; return }
func smsRefTutor(id uint) (ref smsService.UserRef)   { ref.TutorID = &id; return }
