// file: internals/features/users/user/controller/tutor_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	quotaService "yoda_backend/internals/features/jobs/tuition_requests/service"
	dto "yoda_backend/internals/features/users/user/dto"
	userService "yoda_backend/internals/features/users/user/service"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

type TutorController struct {
	DB *gorm.DB
}

func NewTutorController(db *gorm.DB) *TutorController {
	return &TutorController{DB: db}
}

// Details — profil tutor sendiri + sisa kuota + status kelengkapan.
func (ctrl *TutorController) Details(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	now := time.Now().UTC()

	jobsLeft, err := quotaService.GetJobsLeft(ctrl.DB, tutor.ID, tutor.GetAccountType(now), now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kuota")
	}

	return helper.Success(c, "OK", fiber.Map{
		"details":                         tutor,
		"account_type":                    tutor.GetAccountType(now),
		"jobs_left":                       jobsLeft,
		"is_academic_background_complete": tutor.IsAcademicBackgroundComplete(),
	})
}

// UpdateDetails — update data dasar tutor (nama, gender, email, foto).
// Field khusus tutor diurus endpoint personal-information.
func (ctrl *TutorController) UpdateDetails(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	var body dto.UpdateDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := userService.ApplyDetailsUpdate(ctrl.DB, "tutors", &tutor.UserCommon, body, formFile(c, "display_picture")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan profil")
	}
	return helper.Success(c, "Profil tersimpan", tutor)
}

func (ctrl *TutorController) UpdatePersonalInformation(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	var body dto.TutorPersonalInformationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	err := userService.UpdatePersonalInformation(
		ctrl.DB, tutor, body,
		formFile(c, "display_picture"),
		formFile(c, "government_id_picture"),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan personal information")
	}
	return helper.Success(c, "Personal information tersimpan", tutor)
}

func (ctrl *TutorController) UpdateTeachingPreferences(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	var body dto.TutorTeachingPreferencesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := userService.UpdateTeachingPreferences(ctrl.DB, tutor, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan teaching preferences")
	}
	return helper.Success(c, "Teaching preferences tersimpan", tutor)
}

func (ctrl *TutorController) UpdateAcademicBackground(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	var body dto.TutorAcademicBackgroundRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	ab, err := userService.UpdateAcademicBackground(ctrl.DB, tutor, body, formFile(c, "identification_document_picture"))
	if err != nil {
		if errors.Is(err, userService.ErrUnknownInstitutionType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "institution_type tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan academic background")
	}
	return helper.Success(c, "Academic background tersimpan", ab)
}

// ==============================
// PUBLIC (parent-facing)
// ==============================

// Filter — POST /:country/tutor-filter, hasil premium duluan lalu acak.
func (ctrl *TutorController) Filter(c *fiber.Ctx) error {
	country, ok := constants.NormalizeCountry(c.Params("country"))
	if !ok {
		return helper.JsonNotFound(c)
	}

	var body dto.TutorFilterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 50)
	tutors, total, err := userService.FilterTutors(ctrl.DB, country, body, paging)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar tutor")
	}

	return helper.Success(c, "OK", fiber.Map{
		"tutors":     tutors,
		"pagination": helper.BuildPagination(paging, total, len(tutors)),
	})
}

func (ctrl *TutorController) PublicDetails(c *fiber.Ctx) error {
	tutor, err := userService.PublicTutorDetails(ctrl.DB, c.Params("uuid"))
	if err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", tutor)
}

func (ctrl *TutorController) PublicAddView(c *fiber.Ctx) error {
	if err := userService.AddPublicProfileView(ctrl.DB, c.Params("uuid")); err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", nil)
}

// SlugToUUID — URL profil web pakai slug; aplikasi pakai uuid.
func (ctrl *TutorController) SlugToUUID(c *fiber.Ctx) error {
	tutor, err := userService.ResolveTutorSlug(ctrl.DB, c.Params("slug"))
	if err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", fiber.Map{"uuid": tutor.UUID})
}
