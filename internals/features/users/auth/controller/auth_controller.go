// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	dto "yoda_backend/internals/features/users/auth/dto"
	authService "yoda_backend/internals/features/users/auth/service"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ==============================
// SIGN UP
// ==============================

func (ctrl *AuthController) ParentSignUp(c *fiber.Ctx) error {
	return ctrl.parentSignUp(c, false)
}

// OpsParentSignUp — dibuat tim ops, langsung verified, tanpa OTP.
func (ctrl *AuthController) OpsParentSignUp(c *fiber.Ctx) error {
	return ctrl.parentSignUp(c, true)
}

func (ctrl *AuthController) parentSignUp(c *fiber.Ctx, byOps bool) error {
	var body dto.SignUpRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	parent, err := authService.SignUpParent(ctrl.DB, body, byOps)
	if err != nil {
		return signUpError(c, err)
	}
	return helper.JsonCreated(c, "Akun parent berhasil dibuat", parent)
}

func (ctrl *AuthController) StudentSignUp(c *fiber.Ctx) error {
	return ctrl.studentSignUp(c, false)
}

func (ctrl *AuthController) OpsStudentSignUp(c *fiber.Ctx) error {
	return ctrl.studentSignUp(c, true)
}

func (ctrl *AuthController) studentSignUp(c *fiber.Ctx, byOps bool) error {
	var body dto.SignUpRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := authService.SignUpStudent(ctrl.DB, body, byOps)
	if err != nil {
		return signUpError(c, err)
	}
	return helper.JsonCreated(c, "Akun student berhasil dibuat", student)
}

// TutorSignUp — organic; activation & campus-ambassador lewat endpoint
// masing-masing supaya channel tercatat benar.
func (ctrl *AuthController) TutorSignUp(c *fiber.Ctx) error {
	return ctrl.tutorSignUp(c, constants.SignUpChannelOrganic)
}

func (ctrl *AuthController) ActivationTutorSignUp(c *fiber.Ctx) error {
	return ctrl.tutorSignUp(c, constants.SignUpChannelActivation)
}

func (ctrl *AuthController) CampusAmbassadorTutorSignUp(c *fiber.Ctx) error {
	return ctrl.tutorSignUp(c, constants.SignUpChannelCampus)
}

func (ctrl *AuthController) tutorSignUp(c *fiber.Ctx, channel string) error {
	var body dto.TutorSignUpRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	tutor, err := authService.SignUpTutor(ctrl.DB, body, channel, time.Now().UTC())
	if err != nil {
		return signUpError(c, err)
	}
	return helper.JsonCreated(c, "Akun tutor berhasil dibuat", tutor)
}

func signUpError(c *fiber.Ctx, err error) error {
	if errors.Is(err, authService.ErrPhoneNumberTaken) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terdaftar")
	}
	if errors.Is(err, helper.ErrInvalidPhoneNumber) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon tidak valid")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
}

// ==============================
// OTP LOGIN
// ==============================

// LoginSetOTP — factory per tipe user, dipakai route.
func (ctrl *AuthController) LoginSetOTP(userType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SetOTPRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		if err := authService.SendLoginOTP(ctrl.DB, userType, body.Country, body.PhoneNumber); err != nil {
			if errors.Is(err, helper.ErrInvalidPhoneNumber) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon tidak valid")
			}
			return helper.JsonNotFound(c)
		}
		return helper.Success(c, "OTP terkirim", nil)
	}
}

func (ctrl *AuthController) LoginConfirmOTP(userType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ConfirmOTPRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		token, user, err := authService.ConfirmLoginOTP(
			ctrl.DB, userType, body.Country, body.PhoneNumber, body.OTP, time.Now().UTC(),
		)
		if err != nil {
			if errors.Is(err, helper.ErrInvalidPhoneNumber) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon tidak valid")
			}
			return helper.JsonNotFound(c)
		}
		return helper.Success(c, "Login berhasil", fiber.Map{
			"token":   token,
			"details": user,
		})
	}
}

// ==============================
// GOOGLE CONNECT
// ==============================

// GoogleConnect — user sudah login (JWT); id_token diverifikasi server.
func (ctrl *AuthController) GoogleConnect(c *fiber.Ctx) error {
	var body dto.GoogleConnectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var table string
	switch {
	case authMiddleware.GetParent(c) != nil:
		table = "parents"
		parent := authMiddleware.GetParent(c)
		if err := authService.ConnectGoogleAccount(ctrl.DB, table, &parent.UserCommon, body.IDToken); err != nil {
			return googleConnectError(c, err)
		}
		return helper.Success(c, "Akun Google terhubung", parent)
	case authMiddleware.GetStudent(c) != nil:
		table = "students"
		student := authMiddleware.GetStudent(c)
		if err := authService.ConnectGoogleAccount(ctrl.DB, table, &student.UserCommon, body.IDToken); err != nil {
			return googleConnectError(c, err)
		}
		return helper.Success(c, "Akun Google terhubung", student)
	case authMiddleware.GetTutor(c) != nil:
		table = "tutors"
		tutor := authMiddleware.GetTutor(c)
		if err := authService.ConnectGoogleAccount(ctrl.DB, table, &tutor.UserCommon, body.IDToken); err != nil {
			return googleConnectError(c, err)
		}
		return helper.Success(c, "Akun Google terhubung", tutor)
	}
	return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}

func googleConnectError(c *fiber.Ctx, err error) error {
	if errors.Is(err, authService.ErrInvalidGoogleToken) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Google id_token tidak valid")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghubungkan akun Google")
}
