// file: internals/features/ops/controller/ops_auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "yoda_backend/internals/features/users/auth/dto"
	opsModel "yoda_backend/internals/features/ops/model"
	helper "yoda_backend/internals/helpers"
)

var validate = validator.New()

type OpsAuthController struct {
	DB *gorm.DB
}

func NewOpsAuthController(db *gorm.DB) *OpsAuthController {
	return &OpsAuthController{DB: db}
}

// Login — username+password → ops JWT. Username salah dan password salah
// dibalas sama.
func (ctrl *OpsAuthController) Login(c *fiber.Ctx) error {
	var body dto.OpsLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var account opsModel.OpsAccount
	if err := ctrl.DB.Where("username = ?", body.Username).First(&account).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if !account.CheckPassword(body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := helper.CreateOpsToken(account.ID, account.AccountType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"token":   token,
		"details": account,
	})
}
