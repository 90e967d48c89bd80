// file: internals/features/jobs/tuition_requests/route/tuition_request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/jobs/tuition_requests/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func TuitionRequestRoutes(api fiber.Router, db *gorm.DB) {
	trController := controller.NewTuitionRequestController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)
	tutorOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeTutor)

	// Parent
	api.Post("/direct-request-create/:tutor_uuid", parentOnly, trController.CreateDirectRequest)
	api.Get("/parent-tuition-request-list/:status", parentOnly, trController.ParentList)
	api.Get("/parent-tuition-request-details/:uuid", parentOnly, trController.ParentDetails)
	api.Get("/parent-hot-jobs-list-from-rft/:uuid", parentOnly, trController.ParentHotJobsListFromRFT)
	api.Post("/parent-confirm-tuition-request/:uuid", parentOnly, trController.ParentConfirm)

	// Tutor
	api.Get("/tutor-tuition-request-list/:status", tutorOnly, trController.TutorList)
	api.Get("/tutor-tuition-request-details/:uuid", tutorOnly, trController.TutorDetails)
	api.Post("/accept-direct-request/:uuid", tutorOnly, trController.AcceptDirectRequest)
	api.Post("/apply-to-hot-job/:uuid", tutorOnly, trController.ApplyToHotJob)
	api.Post("/tutor-reject-tuition-request/:uuid", tutorOnly, trController.TutorReject)
	api.Post("/tutor-confirm-tuition-request/:uuid", tutorOnly, trController.TutorConfirm)
}
