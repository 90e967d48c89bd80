// file: internals/features/users/auth/service/google_service.go
package service

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"yoda_backend/internals/configs"
	userModel "yoda_backend/internals/features/users/user/model"
)

var ErrInvalidGoogleToken = errors.New("invalid google id token")

// ConnectGoogleAccount — verifikasi id_token dari aplikasi, lalu tandai
// akun terhubung. Email Google dipakai kalau user belum punya email.
func ConnectGoogleAccount(db *gorm.DB, table string, u *userModel.UserCommon, idToken string) error {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return ErrInvalidGoogleToken
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return ErrInvalidGoogleToken
	}

	updates := map[string]interface{}{
		"is_social_media_connected": true,
		"name_in_social_media":      claimSet.Name,
	}
	if u.Email == nil && claimSet.Email != "" {
		updates["email"] = claimSet.Email
		updates["is_email_verified"] = claimSet.EmailVerified
	}

	if err := db.Table(table).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
		return err
	}

	u.IsSocialMediaConnected = true
	u.NameInSocialMedia = &claimSet.Name
	return nil
}
