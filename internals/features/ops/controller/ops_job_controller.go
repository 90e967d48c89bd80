// file: internals/features/ops/controller/ops_job_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	rftController "yoda_backend/internals/features/jobs/rft/controller"
	rftDTO "yoda_backend/internals/features/jobs/rft/dto"
	rftModel "yoda_backend/internals/features/jobs/rft/model"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
	trService "yoda_backend/internals/features/jobs/tuition_requests/service"
	opsDTO "yoda_backend/internals/features/ops/dto"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

// OpsJobController — RFT & tuition request dari sisi dashboard ops.
type OpsJobController struct {
	DB *gorm.DB
}

func NewOpsJobController(db *gorm.DB) *OpsJobController {
	return &OpsJobController{DB: db}
}

// ==============================
// RFT
// ==============================

// RFTCreate — ops bikin RFT atas nama parent (request masuk via telepon).
func (ctrl *OpsJobController) RFTCreate(c *fiber.Ctx) error {
	var meta opsDTO.OpsRFTCreateRequest
	var body rftDTO.CreateRFTRequest

	if err := c.BodyParser(&meta); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(meta); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var parent userModel.Parent
	if err := ctrl.DB.
		Where("uuid = ? AND is_deleted = FALSE", meta.ParentUUID).
		First(&parent).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	rft := rftController.BuildRFT(parent.ID, parent.Country, body)
	if err := ctrl.DB.Create(&rft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat request for tutor")
	}
	return helper.JsonCreated(c, "Request for tutor dibuat", rft)
}

func (ctrl *OpsJobController) RFTDetails(c *fiber.Ctx) error {
	var rft rftModel.RequestForTutor
	if err := ctrl.DB.Where("uuid = ?", c.Params("uuid")).First(&rft).Error; err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", rft)
}

// ChangeRFTRejection — POST ops-change-rft-rejection/:uuid/:status.
func (ctrl *OpsJobController) ChangeRFTRejection(c *fiber.Ctx) error {
	status := c.Params("status")
	if status != "true" && status != "false" {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.Model(&rftModel.RequestForTutor{}).
		Where("uuid = ?", c.Params("uuid")).
		Update("is_rejected_by_ops", status == "true")
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "Status diubah", nil)
}

// RFTFilter — POST /:country/ops-rft-filter[/get-all].
func (ctrl *OpsJobController) RFTFilter(getAll bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		country, ok := constants.NormalizeCountry(c.Params("country"))
		if !ok {
			return helper.JsonNotFound(c)
		}

		var body opsDTO.OpsJobFilterRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		q := ctrl.DB.Model(&rftModel.RequestForTutor{}).Where("country = ?", country)
		if body.IsConfirmed != nil {
			q = q.Where("is_confirmed = ?", *body.IsConfirmed)
		}
		if body.IsRejectedByOps != nil {
			q = q.Where("is_rejected_by_ops = ?", *body.IsRejectedByOps)
		}
		if body.TuitionAreaID != nil {
			q = q.Where("tuition_area_id = ?", *body.TuitionAreaID)
		}
		if body.CreatedFrom != nil {
			q = q.Where("created_at >= ?", *body.CreatedFrom)
		}
		if body.CreatedTo != nil {
			q = q.Where("created_at < (?::date + 1)", *body.CreatedTo)
		}

		var rfts []rftModel.RequestForTutor
		if getAll {
			if err := q.Order("id DESC").Find(&rfts).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
			}
			return helper.Success(c, "OK", fiber.Map{"requests_for_tutor": rfts})
		}

		paging := helper.ResolvePaging(c, 50, 200)
		var total int64
		if err := q.Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
		}
		if err := q.
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
}

// RFTToHotJob — POST ops-rft-to-hot-job/:rft_uuid, body berisi tutor
// target. Duplikat (rft, tutor) dibalas 400.
func (ctrl *OpsJobController) RFTToHotJob(c *fiber.Ctx) error {
	var body opsDTO.OpsPromoteRFTRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var rft rftModel.RequestForTutor
	if err := ctrl.DB.
		Where("uuid = ? AND is_rejected_by_ops = FALSE", c.Params("rft_uuid")).
		First(&rft).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	var tutor userModel.Tutor
	if err := ctrl.DB.
		Where("uuid = ? AND is_suspended_by_ops = FALSE AND is_deleted = FALSE", body.TutorUUID).
		First(&tutor).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	req, err := trService.PromoteRFTToHotJob(ctrl.DB, &rft, &tutor)
	if err != nil {
		if errors.Is(err, trService.ErrDuplicateHotJob) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Hot job untuk tutor ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat hot job")
	}
	return helper.JsonCreated(c, "Hot job dibuat", req)
}

// HotJobsListFromRFT — semua hot job turunan satu RFT.
func (ctrl *OpsJobController) HotJobsListFromRFT(c *fiber.Ctx) error {
	var rft rftModel.RequestForTutor
	if err := ctrl.DB.Where("uuid = ?", c.Params("rft_uuid")).First(&rft).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	var requests []trModel.TuitionRequest
	if err := ctrl.DB.
		Where("parent_rft_id = ?", rft.ID).
		Order("id DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
	}
	return helper.Success(c, "OK", fiber.Map{"tuition_requests": requests})
}

// ==============================
// TUITION REQUEST
// ==============================

func (ctrl *OpsJobController) TuitionRequestDetails(c *fiber.Ctx) error {
	var req trModel.TuitionRequest
	if err := ctrl.DB.Where("uuid = ?", c.Params("uuid")).First(&req).Error; err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", req)
}

func (ctrl *OpsJobController) ChangeTuitionRequestRejection(c *fiber.Ctx) error {
	status := c.Params("status")
	if status != "true" && status != "false" {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.Model(&trModel.TuitionRequest{}).
		Where("uuid = ?", c.Params("uuid")).
		Update("is_rejected_by_ops", status == "true")
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "Status diubah", nil)
}

// TuitionRequestFilter — POST /:country/ops-tuition-request-filter[/get-all].
func (ctrl *OpsJobController) TuitionRequestFilter(getAll bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		country, ok := constants.NormalizeCountry(c.Params("country"))
		if !ok {
			return helper.JsonNotFound(c)
		}

		var body opsDTO.OpsJobFilterRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		q := ctrl.DB.Model(&trModel.TuitionRequest{}).Where("country = ?", country)
		if body.Status != nil {
			q = q.Where("status = ?", *body.Status)
		}
		if body.JobOrigin != nil {
			q = q.Where("job_origin = ?", *body.JobOrigin)
		}
		if body.IsRejectedByOps != nil {
			q = q.Where("is_rejected_by_ops = ?", *body.IsRejectedByOps)
		}
		if body.TuitionAreaID != nil {
			q = q.Where("tuition_area_id = ?", *body.TuitionAreaID)
		}
		if body.CreatedFrom != nil {
			q = q.Where("created_at >= ?", *body.CreatedFrom)
		}
		if body.CreatedTo != nil {
			q = q.Where("created_at < (?::date + 1)", *body.CreatedTo)
		}

		var requests []trModel.TuitionRequest
		if getAll {
			if err := q.Order("id DESC").Find(&requests).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
			}
			return helper.Success(c, "OK", fiber.Map{"tuition_requests": requests})
		}

		paging := helper.ResolvePaging(c, 50, 200)
		var total int64
		if err := q.Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
		}
		if err := q.
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
}

// ParentConfirm — ops konfirmasi atas nama parent (konfirmasi via
// telepon). Jalan lewat state machine yang sama.
func (ctrl *OpsJobController) ParentConfirm(c *fiber.Ctx) error {
	requestUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return helper.JsonNotFound(c)
	}

	var req trModel.TuitionRequest
	if err := ctrl.DB.Where("uuid = ?", requestUUID).First(&req).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	var parent userModel.Parent
	if err := ctrl.DB.First(&parent, req.ParentID).Error; err != nil {
		return helper.JsonNotFound(c)
	}

	updated, err := trService.ConfirmByParent(ctrl.DB, &parent, requestUUID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, trService.ErrNotEligible) || errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal konfirmasi")
	}
	return helper.Success(c, "Konfirmasi tersimpan", updated)
}

// AddRFTNote / AddTuitionRequestNote — catatan ops di job.
func (ctrl *OpsJobController) AddRFTNote(c *fiber.Ctx) error {
	return ctrl.addJobNote(c, "requests_for_tutor", func(u string) (uint, error) {
		var rft rftModel.RequestForTutor
		if err := ctrl.DB.Where("uuid = ?", u).First(&rft).Error; err != nil {
			return 0, err
		}
		return rft.ID, nil
	})
}

func (ctrl *OpsJobController) AddTuitionRequestNote(c *fiber.Ctx) error {
	return ctrl.addJobNote(c, "tuition_requests", func(u string) (uint, error) {
		var req trModel.TuitionRequest
		if err := ctrl.DB.Where("uuid = ?", u).First(&req).Error; err != nil {
			return 0, err
		}
		return req.ID, nil
	})
}

func (ctrl *OpsJobController) addJobNote(c *fiber.Ctx, table string, resolve func(string) (uint, error)) error {
	var body opsDTO.AddOpsNoteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := resolve(c.Params("uuid"))
	if err != nil {
		return helper.JsonNotFound(c)
	}

	account := authMiddleware.GetOpsAccount(c)
	if err := userModel.AppendOpsNote(ctrl.DB, table, id, account.Username, body.Note); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah catatan")
	}
	return helper.Success(c, "Catatan ditambahkan", nil)
}
