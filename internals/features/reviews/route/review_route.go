// file: internals/features/reviews/route/review_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/reviews/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func ReviewRoutes(api fiber.Router, db *gorm.DB) {
	reviewController := controller.NewReviewController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)
	tutorOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeTutor)
	opsOnly := authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountOperations)

	api.Post("/parent-review-create/:uuid", parentOnly, reviewController.ParentCreate)
	api.Get("/parent-review-list", parentOnly, reviewController.ParentList)
	api.Get("/parent-review-details/:uuid", parentOnly, reviewController.ParentDetails)

	api.Get("/tutor-review-list", tutorOnly, reviewController.TutorList)
	api.Get("/tutor-review-details/:uuid", tutorOnly, reviewController.TutorDetails)

	api.Post("/ops-review-create/:uuid", opsOnly, reviewController.OpsCreate)
	api.Get("/ops-review-list", opsOnly, reviewController.OpsList)
	api.Get("/ops-review-details/:uuid", opsOnly, reviewController.OpsDetails)
}
