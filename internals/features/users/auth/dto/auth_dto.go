// file: internals/features/users/auth/dto/auth_dto.go
package dto

// SignUpRequest — parent/student sign up. Nomor dinormalisasi per negara
// sebelum disimpan.
type SignUpRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=120"`
	Country     string  `json:"country" validate:"required,oneof=BD US"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=20"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// TutorSignUpRequest — tutor sign up (organic/activation/campus-
// ambassador memakai endpoint berbeda, payload sama).
type TutorSignUpRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=120"`
	Country     string  `json:"country" validate:"required,oneof=BD US"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=20"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Email       *string `json:"email" validate:"omitempty,email"`

	UndergraduateUniversityID *uint `json:"undergraduate_university"`
}

// SetOTPRequest — minta OTP login dikirim via SMS.
type SetOTPRequest struct {
	Country     string `json:"country" validate:"required,oneof=BD US"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

// ConfirmOTPRequest — tukar OTP dengan JWT.
type ConfirmOTPRequest struct {
	Country     string `json:"country" validate:"required,oneof=BD US"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	OTP         string `json:"otp" validate:"required,len=5,numeric"`
}

// OpsLoginRequest — login tim internal.
type OpsLoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// GoogleConnectRequest — id_token hasil Google Sign-In di aplikasi.
type GoogleConnectRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
