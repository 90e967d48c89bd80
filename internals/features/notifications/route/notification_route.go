// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/notifications/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	notificationController := controller.NewNotificationController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)
	studentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeStudent)
	tutorOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeTutor)

	api.Get("/parent-notification-list", parentOnly, notificationController.List)
	api.Get("/student-notification-list", studentOnly, notificationController.List)
	api.Get("/tutor-notification-list", tutorOnly, notificationController.List)

	api.Post("/parent-read-notification/:id", parentOnly, notificationController.Read)
	api.Post("/student-read-notification/:id", studentOnly, notificationController.Read)
	api.Post("/tutor-read-notification/:id", tutorOnly, notificationController.Read)
}
