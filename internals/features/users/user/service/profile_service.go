// file: internals/features/users/user/service/profile_service.go
package service

import (
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	dto "yoda_backend/internals/features/users/user/dto"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	"yoda_backend/internals/helpers/oss"
)

// ApplyDetailsUpdate — update profil dasar parent/student. Foto profil
// (kalau ada) dikonversi webp lalu diunggah ke OSS.
func ApplyDetailsUpdate(db *gorm.DB, table string, u *userModel.UserCommon, in dto.UpdateDetailsRequest, displayPicture *multipart.FileHeader) error {
	updates := map[string]interface{}{}

	if in.FullName != nil {
		updates["full_name"] = *in.FullName
		u.FullName = *in.FullName
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
		u.Gender = in.Gender
	}
	if in.Email != nil {
		updates["email"] = *in.Email
		updates["is_email_verified"] = false
		u.Email = in.Email
		u.IsEmailVerified = false
	}
	if in.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *in.DateOfBirth)
		if err != nil {
			return err
		}
		updates["date_of_birth"] = dob
		u.DateOfBirth = &dob
	}

	if displayPicture != nil {
		url, err := oss.UploadPicture("display-pictures/"+table, displayPicture)
		if err != nil {
			return err
		}
		updates["display_picture"] = url
		u.DisplayPicture = &url
	}

	if len(updates) == 0 {
		return nil
	}
	if err := db.Table(table).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
		return err
	}

	if in.Email != nil {
		go helper.SendEmail(*in.Email,
			"Welcome to Yoda",
			"Your email address has been added to your Yoda account. If this wasn't you, please contact support.")
	}
	return nil
}
