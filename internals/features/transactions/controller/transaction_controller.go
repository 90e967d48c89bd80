// file: internals/features/transactions/controller/transaction_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	opsDTO "yoda_backend/internals/features/ops/dto"
	trxModel "yoda_backend/internals/features/transactions/model"
	trxService "yoda_backend/internals/features/transactions/service"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// ==============================
// LISTS
// ==============================

func (ctrl *TransactionController) list(c *fiber.Ctx, column string, id uint) error {
	paging := helper.ResolvePaging(c, 20, 50)

	base := ctrl.DB.Model(&trxModel.Transaction{}).Where(column+" = ?", id)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	var transactions []trxModel.Transaction
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&transactions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"transactions": transactions,
		"pagination":   helper.BuildPagination(paging, total, len(transactions)),
	})
}

func (ctrl *TransactionController) ParentList(c *fiber.Ctx) error {
	return ctrl.list(c, "parent_id", authMiddleware.GetParent(c).ID)
}

func (ctrl *TransactionController) StudentList(c *fiber.Ctx) error {
	return ctrl.list(c, "student_id", authMiddleware.GetStudent(c).ID)
}

func (ctrl *TransactionController) TutorList(c *fiber.Ctx) error {
	return ctrl.list(c, "tutor_id", authMiddleware.GetTutor(c).ID)
}

// OpsTutorTransactionList — riwayat satu tutor via uuid.
func (ctrl *TransactionController) OpsTutorTransactionList(c *fiber.Ctx) error {
	var tutor userModel.Tutor
	if err := ctrl.DB.Where("uuid = ?", c.Params("tutor_uuid")).First(&tutor).Error; err != nil {
		return helper.JsonNotFound(c)
	}
	return ctrl.list(c, "tutor_id", tutor.ID)
}

// OpsTutorTransactionListAll — semua transaksi tutor, terbaru dulu.
func (ctrl *TransactionController) OpsTutorTransactionListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	base := ctrl.DB.Model(&trxModel.Transaction{}).Where("tutor_id IS NOT NULL")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	var transactions []trxModel.Transaction
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&transactions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"transactions": transactions,
		"pagination":   helper.BuildPagination(paging, total, len(transactions)),
	})
}

// ==============================
// PREMIUM & PAYMENT
// ==============================

// UpgradeWithPoints — POST upgrade-tutor-to-premium-with-points.
func (ctrl *TransactionController) UpgradeWithPoints(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	updated, err := trxService.UpgradeTutorWithPoints(ctrl.DB, tutor.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, trxService.ErrNotEnoughPoints) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Poin tidak cukup")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upgrade premium")
	}
	return helper.Success(c, "Premium aktif", updated)
}

// PaymentCreate — bikin transaksi pending + snap token Midtrans.
func (ctrl *TransactionController) PaymentCreate(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)

	record, token, err := trxService.CreatePremiumPaymentTransaction(ctrl.DB, tutor, time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}
	return helper.JsonCreated(c, "Transaksi dibuat", fiber.Map{
		"transaction": record,
		"snap_token":  token,
	})
}

// OpsUpgradeTutor — premium manual dari dashboard sampai tanggal
// tertentu (hadiah, kompensasi, dsb).
func (ctrl *TransactionController) OpsUpgradeTutor(c *fiber.Ctx) error {
	var body opsDTO.OpsUpgradeTutorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	validTill, err := time.Parse("2006-01-02", body.ValidTill)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	account := authMiddleware.GetOpsAccount(c)
	updated, err := trxService.OpsUpgradeTutor(ctrl.DB, c.Params("tutor_uuid"), validTill, account.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upgrade premium")
	}
	return helper.Success(c, "Premium diperpanjang", updated)
}

// Webhook — endpoint notifikasi Midtrans (tanpa auth user; dipanggil
// server-to-server).
func (ctrl *TransactionController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := trxService.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook gagal diproses")
	}
	return helper.Success(c, "OK", nil)
}
