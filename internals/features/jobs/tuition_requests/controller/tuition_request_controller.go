// file: internals/features/jobs/tuition_requests/controller/tuition_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	dto "yoda_backend/internals/features/jobs/tuition_requests/dto"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
	trService "yoda_backend/internals/features/jobs/tuition_requests/service"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type TuitionRequestController struct {
	DB *gorm.DB
}

func NewTuitionRequestController(db *gorm.DB) *TuitionRequestController {
	return &TuitionRequestController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("uuid"))
}

// transitionError — pemetaan seragam: kuota habis 402, transisi tidak
// valid / baris tidak kelihatan 404.
func transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, trService.ErrQuotaExceeded):
		return helper.JsonQuotaExceeded(c, "Jobs limit reached")
	case errors.Is(err, trService.ErrNotEligible), errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonNotFound(c)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan")
}

// ==============================
// CREATE (parent)
// ==============================

// CreateDirectRequest — POST direct-request-create/:tutor_uuid. Tutor
// harus layak tampil (verified + lengkap); selain itu 404.
func (ctrl *TuitionRequestController) CreateDirectRequest(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)

	var body dto.CreateDirectRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var tutor userModel.Tutor
	err := ctrl.DB.
		Where("uuid = ?", c.Params("tutor_uuid")).
		Where("is_suspended_by_ops = FALSE AND is_deleted = FALSE AND is_verified_by_ops = TRUE").
		Where("is_personal_information_complete = TRUE AND is_teaching_preferences_complete = TRUE").
		First(&tutor).Error
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req := trModel.TuitionRequest{
		NoteByParent:                   body.NoteByParent,
		StudentGender:                  body.StudentGender,
		StudentSchool:                  body.StudentSchool,
		StudentClass:                   body.StudentClass,
		StudentMedium:                  body.StudentMedium,
		StudentBanglaMediumVersion:     body.StudentBanglaMediumVersion,
		StudentEnglishMediumCurriculum: body.StudentEnglishMediumCurriculum,
		TuitionAreaID:                  body.TuitionAreaID,
		TeachingPlacePreference:        body.TeachingPlacePreference,
		NumberOfDaysPerWeek:            body.NumberOfDaysPerWeek,
		Salary:                         body.Salary,
		IsSalaryNegotiable:             true,
		SubjectIDs:                     pq.Int64Array(body.SubjectIDs),
	}
	if body.IsSalaryNegotiable != nil {
		req.IsSalaryNegotiable = *body.IsSalaryNegotiable
	}
	if body.FindSimilarTutorsForParent != nil {
		req.FindSimilarTutorsForParent = *body.FindSimilarTutorsForParent
	}

	if err := trService.CreateDirectRequest(ctrl.DB, parent, &tutor, &req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat direct request")
	}
	return helper.JsonCreated(c, "Direct request terkirim", req)
}

// ==============================
// LISTS & DETAILS
// ==============================

// expandStatuses — vocabulary list endpoint: hanya empat status yang
// diterima, dan in-process mencakup kedua status waiting (dari sisi user
// itu masih satu fase "sedang berjalan"). Status lain = nil = 404.
func expandStatuses(status string) []string {
	switch status {
	case constants.StatusDirectRequest, constants.StatusHotJob, constants.StatusConfirmed:
		return []string{status}
	case constants.StatusInProcess:
		return []string{
			constants.StatusInProcess,
			constants.StatusWaitingForParent,
			constants.StatusWaitingForTutor,
		}
	}
	return nil
}

// ParentList — GET parent-tuition-request-list/:status.
func (ctrl *TuitionRequestController) ParentList(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	statuses := expandStatuses(c.Params("status"))
	if statuses == nil {
		return helper.JsonNotFound(c)
	}

	return ctrl.list(c, statuses, "parent_id", parent.ID)
}

// TutorList — GET tutor-tuition-request-list/:status.
func (ctrl *TuitionRequestController) TutorList(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	statuses := expandStatuses(c.Params("status"))
	if statuses == nil {
		return helper.JsonNotFound(c)
	}

	return ctrl.list(c, statuses, "tutor_id", tutor.ID)
}

func (ctrl *TuitionRequestController) list(c *fiber.Ctx, statuses []string, ownerColumn string, ownerID uint) error {
	paging := helper.ResolvePaging(c, 20, 50)

	base := ctrl.DB.Model(&trModel.TuitionRequest{}).
		Where(ownerColumn+" = ?", ownerID).
		Where("status IN ?", statuses).
		Where("is_rejected_by_tutor = FALSE AND is_rejected_by_ops = FALSE").
		Where("notification_created = TRUE")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}

	var requests []trModel.TuitionRequest
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}

	return helper.Success(c, "OK", fiber.Map{
		"tuition_requests": requests,
		"pagination":       helper.BuildPagination(paging, total, len(requests)),
	})
}

func (ctrl *TuitionRequestController) ParentDetails(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	return ctrl.details(c, "parent_id", parent.ID)
}

func (ctrl *TuitionRequestController) TutorDetails(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	return ctrl.details(c, "tutor_id", tutor.ID)
}

func (ctrl *TuitionRequestController) details(c *fiber.Ctx, ownerColumn string, ownerID uint) error {
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	var req trModel.TuitionRequest
	err = ctrl.DB.
		Where("uuid = ?", requestUUID).
		Where(ownerColumn+" = ?", ownerID).
		Where("is_rejected_by_tutor = FALSE AND is_rejected_by_ops = FALSE").
		Where("notification_created = TRUE").
		First(&req).Error
	if err != nil {
		return helper.JsonNotFound(c)
	}

	// Nomor telepon lawan hanya dibuka setelah confirmed.
	data := fiber.Map{"tuition_request": req}
	if ownerColumn == "parent_id" && req.ShowTutorsPhoneNumber {
		var tutor userModel.Tutor
		if err := ctrl.DB.First(&tutor, req.TutorID).Error; err == nil {
			data["tutor_phone_number"] = tutor.PhoneNumber
		}
	}
	return helper.Success(c, "OK", data)
}

// ParentHotJobsListFromRFT — semua hot job yang ops buat dari satu RFT
// milik parent, untuk memantau siapa saja yang di-approach.
func (ctrl *TuitionRequestController) ParentHotJobsListFromRFT(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	rftUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	var requests []trModel.TuitionRequest
	err = ctrl.DB.
		Joins("JOIN requests_for_tutor rft ON rft.id = tuition_requests.parent_rft_id").
		Where("rft.uuid = ? AND rft.parent_id = ?", rftUUID, parent.ID).
		Where("tuition_requests.is_rejected_by_tutor = FALSE AND tuition_requests.is_rejected_by_ops = FALSE").
		Order("tuition_requests.id DESC").
		Find(&requests).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}
	return helper.Success(c, "OK", fiber.Map{"tuition_requests": requests})
}

// ==============================
// TRANSITIONS
// ==============================

func (ctrl *TuitionRequestController) AcceptDirectRequest(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.AcceptDirectRequest(ctrl.DB, tutor, requestUUID, time.Now().UTC())
	if err != nil {
		return transitionError(c, err)
	}
	return helper.Success(c, "Direct request diterima", req)
}

func (ctrl *TuitionRequestController) ApplyToHotJob(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.ApplyToHotJob(ctrl.DB, tutor, requestUUID, time.Now().UTC())
	if err != nil {
		return transitionError(c, err)
	}
	return helper.Success(c, "Berhasil apply ke hot job", req)
}

func (ctrl *TuitionRequestController) TutorReject(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.RejectByTutor(ctrl.DB, tutor, requestUUID)
	if err != nil {
		return transitionError(c, err)
	}
	return helper.Success(c, "Tuition request ditolak", req)
}

func (ctrl *TuitionRequestController) TutorConfirm(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.ConfirmByTutor(ctrl.DB, tutor, requestUUID, time.Now().UTC())
	if err != nil {
		return transitionError(c, err)
	}
	return helper.Success(c, "Konfirmasi tersimpan", req)
}

func (ctrl *TuitionRequestController) ParentConfirm(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	requestUUID, err := parseUUIDParam(c)
	if err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.ConfirmByParent(ctrl.DB, parent, requestUUID, time.Now().UTC())
	if err != nil {
		return transitionError(c, err)
	}
	return helper.Success(c, "Konfirmasi tersimpan", req)
}
