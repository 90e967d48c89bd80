// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifModel "yoda_backend/internals/features/notifications/model"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ownerFilter — kolom FK sesuai siapa yang login.
func ownerFilter(c *fiber.Ctx) (column string, id uint, ok bool) {
	if parent := authMiddleware.GetParent(c); parent != nil {
		return "parent_id", parent.ID, true
	}
	if student := authMiddleware.GetStudent(c); student != nil {
		return "student_id", student.ID, true
	}
	if tutor := authMiddleware.GetTutor(c); tutor != nil {
		return "tutor_id", tutor.ID, true
	}
	return "", 0, false
}

// List — notifikasi milik user login, terbaru dulu.
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	column, id, ok := ownerFilter(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 50)

	base := ctrl.DB.Model(&notifModel.Notification{}).Where(column+" = ?", id)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat notifikasi")
	}

	var notifications []notifModel.Notification
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat notifikasi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": notifications,
		"pagination":    helper.BuildPagination(paging, total, len(notifications)),
	})
}

// Read — tandai satu notifikasi terbaca. Notifikasi user lain tidak
// kelihatan (404).
func (ctrl *NotificationController) Read(c *fiber.Ctx) error {
	column, id, ok := ownerFilter(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.Model(&notifModel.Notification{}).
		Where("id = ?", c.Params("id")).
		Where(column+" = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", nil)
}
