// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/users/user/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)
	tutorController := controller.NewTutorController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)
	studentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeStudent)
	tutorOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeTutor)

	// ==========================
	// PROFIL
	// ==========================
	api.Get("/parent-details", parentOnly, userController.ParentDetails)
	api.Post("/parent-details", parentOnly, userController.UpdateParentDetails)

	api.Get("/student-details", studentOnly, userController.StudentDetails)
	api.Post("/student-details", studentOnly, userController.UpdateStudentDetails)

	api.Get("/tutor-details", tutorOnly, tutorController.Details)
	api.Post("/tutor-details", tutorOnly, tutorController.UpdateDetails)
	api.Post("/tutor-personal-information", tutorOnly, tutorController.UpdatePersonalInformation)
	api.Post("/tutor-teaching-preferences", tutorOnly, tutorController.UpdateTeachingPreferences)
	api.Post("/tutor-academic-background", tutorOnly, tutorController.UpdateAcademicBackground)

	// ==========================
	// PENCARIAN & PROFIL PUBLIK
	// ==========================
	api.Post("/:country/tutor-filter", parentOnly, tutorController.Filter)

	api.Get("/tutor-public-details/:uuid", tutorController.PublicDetails)
	api.Post("/tutor-public-add-view/:uuid", tutorController.PublicAddView)
	api.Get("/tutor-slug-to-uuid/:slug", tutorController.SlugToUUID)
}
