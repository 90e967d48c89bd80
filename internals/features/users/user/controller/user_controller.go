// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "yoda_backend/internals/features/users/user/dto"
	userService "yoda_backend/internals/features/users/user/service"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// formFile — file opsional dari multipart; absennya file bukan error.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}

// ==============================
// PARENT / STUDENT DETAILS
// ==============================

func (ctrl *UserController) ParentDetails(c *fiber.Ctx) error {
	return helper.Success(c, "OK", authMiddleware.GetParent(c))
}

func (ctrl *UserController) UpdateParentDetails(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)

	var body dto.UpdateDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := userService.ApplyDetailsUpdate(ctrl.DB, "parents", &parent.UserCommon, body, formFile(c, "display_picture")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan profil")
	}
	return helper.Success(c, "Profil tersimpan", parent)
}

func (ctrl *UserController) StudentDetails(c *fiber.Ctx) error {
	return helper.Success(c, "OK", authMiddleware.GetStudent(c))
}

func (ctrl *UserController) UpdateStudentDetails(c *fiber.Ctx) error {
	student := authMiddleware.GetStudent(c)

	var body dto.UpdateDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := userService.ApplyDetailsUpdate(ctrl.DB, "students", &student.UserCommon, body, formFile(c, "display_picture")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan profil")
	}
	return helper.Success(c, "Profil tersimpan", student)
}
