// file: internals/features/jobs/rft/controller/rft_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "yoda_backend/internals/features/jobs/rft/dto"
	rftModel "yoda_backend/internals/features/jobs/rft/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type RFTController struct {
	DB *gorm.DB
}

func NewRFTController(db *gorm.DB) *RFTController {
	return &RFTController{DB: db}
}

// BuildRFT — dipakai endpoint parent dan ops (ops mengisi parent lain).
func BuildRFT(parentID uint, country string, in dto.CreateRFTRequest) rftModel.RequestForTutor {
	rft := rftModel.RequestForTutor{
		ParentID: parentID,
		Country:  country,

		NoteByParent:                   in.NoteByParent,
		StudentGender:                  in.StudentGender,
		StudentSchool:                  in.StudentSchool,
		StudentClass:                   in.StudentClass,
		StudentMedium:                  in.StudentMedium,
		StudentBanglaMediumVersion:     in.StudentBanglaMediumVersion,
		StudentEnglishMediumCurriculum: in.StudentEnglishMediumCurriculum,

		TuitionAreaID:           in.TuitionAreaID,
		TeachingPlacePreference: in.TeachingPlacePreference,
		NumberOfDaysPerWeek:     in.NumberOfDaysPerWeek,
		Salary:                  in.Salary,
		IsSalaryNegotiable:      true,
		SubjectIDs:              pq.Int64Array(in.SubjectIDs),

		TutorGender:                    in.TutorGender,
		TutorUndergraduateUniversityID: in.TutorUndergraduateUniversityID,
		TutorAcademicMedium:            in.TutorAcademicMedium,
		TutorAcademicFieldOfStudy:      in.TutorAcademicFieldOfStudy,
	}
	if in.IsSalaryNegotiable != nil {
		rft.IsSalaryNegotiable = *in.IsSalaryNegotiable
	}
	return rft
}

// Create — POST rft-create. Parent yang belum diverifikasi tetap boleh
// bikin; ops yang menyaring sebelum promote.
func (ctrl *RFTController) Create(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)

	var body dto.CreateRFTRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	rft := BuildRFT(parent.ID, parent.Country, body)
	if err := ctrl.DB.Create(&rft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat request for tutor")
	}
	return helper.JsonCreated(c, "Request for tutor dibuat", rft)
}

// List — RFT milik parent sendiri, terbaru dulu.
func (ctrl *RFTController) List(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	paging := helper.ResolvePaging(c, 20, 50)

	var total int64
	base := ctrl.DB.Model(&rftModel.RequestForTutor{}).
		Where("parent_id = ? AND is_rejected_by_ops = FALSE", parent.ID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}

	var rfts []rftModel.RequestForTutor
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rfts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}

	return helper.Success(c, "OK", fiber.Map{
		"requests_for_tutor": rfts,
		"pagination":         helper.BuildPagination(paging, total, len(rfts)),
	})
}

// Details — satu RFT milik parent sendiri.
func (ctrl *RFTController) Details(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)

	var rft rftModel.RequestForTutor
	err := ctrl.DB.
		Where("uuid = ? AND parent_id = ? AND is_rejected_by_ops = FALSE", c.Params("uuid"), parent.ID).
		First(&rft).Error
	if err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", rft)
}
