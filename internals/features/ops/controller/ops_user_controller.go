// file: internals/features/ops/controller/ops_user_controller.go
package controller

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	opsDTO "yoda_backend/internals/features/ops/dto"
	opsService "yoda_backend/internals/features/ops/service"
	smsModel "yoda_backend/internals/features/sms/model"
	smsService "yoda_backend/internals/features/sms/service"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

// OpsUserController — manajemen parent/student/tutor dari dashboard ops.
// Tipe user dipilih saat mounting route (kind).
type OpsUserController struct {
	DB *gorm.DB
}

func NewOpsUserController(db *gorm.DB) *OpsUserController {
	return &OpsUserController{DB: db}
}

func tableForKind(kind string) string {
	switch kind {
	case constants.UserTypeParent:
		return "parents"
	case constants.UserTypeStudent:
		return "students"
	case constants.UserTypeTutor:
		return "tutors"
	}
	return ""
}

// destSlice / destOne — GORM butuh tipe konkret per tabel.
func destSlice(kind string) interface{} {
	switch kind {
	case constants.UserTypeParent:
		return &[]userModel.Parent{}
	case constants.UserTypeStudent:
		return &[]userModel.Student{}
	default:
		return &[]userModel.Tutor{}
	}
}

func destOne(kind string) interface{} {
	switch kind {
	case constants.UserTypeParent:
		return &userModel.Parent{}
	case constants.UserTypeStudent:
		return &userModel.Student{}
	default:
		return &userModel.Tutor{}
	}
}

func sliceLen(dest interface{}) int {
	return reflect.ValueOf(dest).Elem().Len()
}

func userIDOf(kind string, dest interface{}) uint {
	switch kind {
	case constants.UserTypeParent:
		return dest.(*userModel.Parent).ID
	case constants.UserTypeStudent:
		return dest.(*userModel.Student).ID
	default:
		return dest.(*userModel.Tutor).ID
	}
}

// ==============================
// LIST & FILTER
// ==============================

// List — GET /:country/ops-<kind>-list. Termasuk yang suspended; ops
// harus lihat semuanya kecuali yang sudah dihapus.
func (ctrl *OpsUserController) List(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		country, ok := constants.NormalizeCountry(c.Params("country"))
		if !ok {
			return helper.JsonNotFound(c)
		}
		paging := helper.ResolvePaging(c, 50, 200)

		base := ctrl.DB.Table(tableForKind(kind)).
			Where("country = ? AND is_deleted = FALSE", country)

		var total int64
		if err := base.Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
		}

		dest := destSlice(kind)
		if err := base.
			Order("id DESC").
			Limit(paging.PerPage).
			Offset(paging.Offset).
			Find(dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
		}

		return helper.Success(c, "OK", fiber.Map{
			"users":      dest,
			"pagination": helper.BuildPagination(paging, total, sliceLen(dest)),
		})
	}
}

// Filter — POST /:country/ops-<kind>-filter; getAll melewati pagination
// (ekspor CSV di dashboard).
func (ctrl *OpsUserController) Filter(kind string, getAll bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		country, ok := constants.NormalizeCountry(c.Params("country"))
		if !ok {
			return helper.JsonNotFound(c)
		}

		var body opsDTO.OpsUserFilterRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		q := ctrl.DB.Table(tableForKind(kind)).
			Where("country = ? AND is_deleted = FALSE", country)

		if body.FullName != nil {
			q = q.Where("full_name ILIKE ?", "%"+*body.FullName+"%")
		}
		if body.PhoneNumber != nil {
			q = q.Where("phone_number LIKE ?", "%"+*body.PhoneNumber+"%")
		}
		if body.Gender != nil {
			q = q.Where("gender = ?", *body.Gender)
		}
		if body.IsVerifiedByOps != nil {
			q = q.Where("is_verified_by_ops = ?", *body.IsVerifiedByOps)
		}
		if body.IsSuspendedByOps != nil {
			q = q.Where("is_suspended_by_ops = ?", *body.IsSuspendedByOps)
		}
		if body.IsPhoneNumberVerified != nil {
			q = q.Where("is_phone_number_verified = ?", *body.IsPhoneNumberVerified)
		}
		if body.SignUpDateFrom != nil {
			q = q.Where("sign_up_date >= ?", *body.SignUpDateFrom)
		}
		if body.SignUpDateTo != nil {
			q = q.Where("sign_up_date < (?::date + 1)", *body.SignUpDateTo)
		}
		if kind == constants.UserTypeTutor {
			if body.SignUpChannel != nil {
				q = q.Where("sign_up_channel = ?", *body.SignUpChannel)
			}
			if body.UndergraduateUniversityID != nil {
				q = q.Where("undergraduate_university_id = ?", *body.UndergraduateUniversityID)
			}
			if body.IsPersonalInformationComplete != nil {
				q = q.Where("is_personal_information_complete = ?", *body.IsPersonalInformationComplete)
			}
			if body.IsTeachingPreferencesComplete != nil {
				q = q.Where("is_teaching_preferences_complete = ?", *body.IsTeachingPreferencesComplete)
			}
		}

		dest := destSlice(kind)
		if getAll {
			if err := q.Order("id DESC").Find(dest).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
			}
			return helper.Success(c, "OK", fiber.Map{"users": dest})
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
			Find(dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar")
		}

		return helper.Success(c, "OK", fiber.Map{
			"users":      dest,
			"pagination": helper.BuildPagination(paging, total, sliceLen(dest)),
		})
	}
}

// ==============================
// DETAILS & UPDATE
// ==============================

func (ctrl *OpsUserController) Details(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dest := destOne(kind)
		q := ctrl.DB.Table(tableForKind(kind)).Where("uuid = ?", c.Params("uuid"))
		if kind == constants.UserTypeTutor {
			q = ctrl.DB.
				Preload("UndergraduateUniversityAB").
				Preload("SchoolAB").
				Preload("CollegeAB").
				Where("uuid = ?", c.Params("uuid"))
		}
		if err := q.First(dest).Error; err != nil {
			return helper.JsonNotFound(c)
		}
		return helper.Success(c, "OK", dest)
	}
}

func (ctrl *OpsUserController) UpdateDetails(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body opsDTO.OpsUpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		updates := map[string]interface{}{}
		if body.FullName != nil {
			updates["full_name"] = *body.FullName
		}
		if body.Gender != nil {
			updates["gender"] = *body.Gender
		}
		if body.Email != nil {
			updates["email"] = *body.Email
		}
		if body.Points != nil {
			updates["points"] = *body.Points
		}
		if body.IsSuspendedByOps != nil {
			updates["is_suspended_by_ops"] = *body.IsSuspendedByOps
		}
		if body.IsDeleted != nil {
			updates["is_deleted"] = *body.IsDeleted
		}
		if len(updates) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
		}

		res := ctrl.DB.Table(tableForKind(kind)).
			Where("uuid = ?", c.Params("uuid")).
			Updates(updates)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan")
		}
		if res.RowsAffected == 0 {
			return helper.JsonNotFound(c)
		}
		return helper.Success(c, "Tersimpan", nil)
	}
}

// ChangeVerification — POST ops-change-<kind>-verification/:uuid/:status.
// Verifikasi parent mem-backfill notifikasi direct request yang ditahan.
func (ctrl *OpsUserController) ChangeVerification(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Params("status")
		if status != "true" && status != "false" {
			return helper.JsonNotFound(c)
		}

		dest := destOne(kind)
		if err := ctrl.DB.Table(tableForKind(kind)).
			Where("uuid = ? AND is_deleted = FALSE", c.Params("uuid")).
			First(dest).Error; err != nil {
			return helper.JsonNotFound(c)
		}

		if err := opsService.ChangeUserVerification(ctrl.DB, tableForKind(kind), userIDOf(kind, dest), status == "true"); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah verifikasi")
		}
		return helper.Success(c, "Verifikasi diubah", nil)
	}
}

// ==============================
// NOTES, SMS
// ==============================

// AddNote — POST add-ops-note/<kind>/:uuid.
func (ctrl *OpsUserController) AddNote(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body opsDTO.AddOpsNoteRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		dest := destOne(kind)
		if err := ctrl.DB.Table(tableForKind(kind)).
			Where("uuid = ?", c.Params("uuid")).
			First(dest).Error; err != nil {
			return helper.JsonNotFound(c)
		}

		account := authMiddleware.GetOpsAccount(c)
		if err := userModel.AppendOpsNote(ctrl.DB, tableForKind(kind), userIDOf(kind, dest), account.Username, body.Note); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah catatan")
		}
		return helper.Success(c, "Catatan ditambahkan", nil)
	}
}

// SendSMS — POST ops-send-sms-to-<kind>. SMS manual, tercatat di log.
func (ctrl *OpsUserController) SendSMS(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body opsDTO.OpsSendSMSRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
		}
		if err := validate.Struct(body); err != nil {
			return helper.ValidationError(c, err)
		}

		dest := destOne(kind)
		if err := ctrl.DB.Table(tableForKind(kind)).
			Where("uuid = ?", body.UserUUID).
			First(dest).Error; err != nil {
			return helper.JsonNotFound(c)
		}

		var ref smsService.UserRef
		var phone, country string
		switch kind {
		case constants.UserTypeParent:
			parent := dest.(*userModel.Parent)
			ref.ParentID, phone, country = &parent.ID, parent.PhoneNumber, parent.Country
		case constants.UserTypeStudent:
			student := dest.(*userModel.Student)
			ref.StudentID, phone, country = &student.ID, student.PhoneNumber, student.Country
		default:
			tutor := dest.(*userModel.Tutor)
			ref.TutorID, phone, country = &tutor.ID, tutor.PhoneNumber, tutor.Country
		}

		smsService.SendSMS(ctrl.DB, country, phone, body.Message, ref)
		return helper.Success(c, "SMS dikirim", nil)
	}
}

// SMSLogList — GET ops-<kind>-sms-log-list/:uuid.
func (ctrl *OpsUserController) SMSLogList(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dest := destOne(kind)
		if err := ctrl.DB.Table(tableForKind(kind)).
			Where("uuid = ?", c.Params("uuid")).
			First(dest).Error; err != nil {
			return helper.JsonNotFound(c)
		}

		column := "tutor_id"
		switch kind {
		case constants.UserTypeParent:
			column = "parent_id"
		case constants.UserTypeStudent:
			column = "student_id"
		}

		var logs []smsModel.SMSLog
		if err := ctrl.DB.
			Where(column+" = ?", userIDOf(kind, dest)).
			Order("id DESC").
			Limit(200).
			Find(&logs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log SMS")
		}
		return helper.Success(c, "OK", fiber.Map{"sms_logs": logs})
	}
}
