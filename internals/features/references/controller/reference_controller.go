// file: internals/features/references/controller/reference_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	refModel "yoda_backend/internals/features/references/model"
	helper "yoda_backend/internals/helpers"
)

// ReferenceController — list data referensi untuk form di aplikasi.
// Semua endpoint read-only; seeding lewat internals/seeds.
type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(db *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: db}
}

func (ctrl *ReferenceController) countryParam(c *fiber.Ctx) (string, bool) {
	return constants.NormalizeCountry(c.Params("country"))
}

func (ctrl *ReferenceController) AreaList(c *fiber.Ctx) error {
	country, ok := ctrl.countryParam(c)
	if !ok {
		return helper.JsonNotFound(c)
	}
	var areas []refModel.Area
	if err := ctrl.DB.Where("country = ?", country).Order("name").Find(&areas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat area")
	}
	return helper.Success(c, "OK", fiber.Map{"areas": areas})
}

// OfflineSubjectList — opsional difilter subject_type lewat path.
func (ctrl *ReferenceController) OfflineSubjectList(c *fiber.Ctx) error {
	country, ok := ctrl.countryParam(c)
	if !ok {
		return helper.JsonNotFound(c)
	}

	q := ctrl.DB.Where("country = ?", country)
	if subjectType := c.Params("type"); subjectType != "" {
		q = q.Where("subject_type = ?", subjectType)
	}

	var subjects []refModel.OfflineSubject
	if err := q.Order("name").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}
	return helper.Success(c, "OK", fiber.Map{"subjects": subjects})
}

func (ctrl *ReferenceController) OnlineSubjectList(c *fiber.Ctx) error {
	country, ok := ctrl.countryParam(c)
	if !ok {
		return helper.JsonNotFound(c)
	}
	var subjects []refModel.OnlineSubject
	if err := ctrl.DB.Where("country = ?", country).Order("name").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}
	return helper.Success(c, "OK", fiber.Map{"subjects": subjects})
}

func (ctrl *ReferenceController) SchoolList(c *fiber.Ctx) error {
	country, ok := ctrl.countryParam(c)
	if !ok {
		return helper.JsonNotFound(c)
	}
	var schools []refModel.School
	if err := ctrl.DB.Where("country = ?", country).Order("name").Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat school")
	}
	return helper.Success(c, "OK", fiber.Map{"schools": schools})
}

func (ctrl *ReferenceController) UniversityList(c *fiber.Ctx) error {
	country, ok := ctrl.countryParam(c)
	if !ok {
		return helper.JsonNotFound(c)
	}
	var universities []refModel.University
	if err := ctrl.DB.Where("country = ?", country).Order("name").Find(&universities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat university")
	}
	return helper.Success(c, "OK", fiber.Map{"universities": universities})
}

func (ctrl *ReferenceController) UniversityFieldOfStudyList(c *fiber.Ctx) error {
	var fields []refModel.UniversityFieldOfStudy
	if err := ctrl.DB.Order("name").Find(&fields).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat field of study")
	}
	return helper.Success(c, "OK", fiber.Map{"fields_of_study": fields})
}

func (ctrl *ReferenceController) UniversityDegreeList(c *fiber.Ctx) error {
	var degrees []refModel.UniversityDegree
	if err := ctrl.DB.Order("name").Find(&degrees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat degree")
	}
	return helper.Success(c, "OK", fiber.Map{"degrees": degrees})
}
