// file: internals/features/ops/route/ops_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/ops/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

// Semua endpoint dashboard internal. Admin ikut lolos lewat middleware.
func OpsRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewOpsUserController(db)
	jobController := controller.NewOpsJobController(db)

	ops := api.Group("", authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountOperations))

	// ==========================
	// USER MANAGEMENT (parent / student / tutor)
	// ==========================
	for _, kind := range []string{
		constants.UserTypeParent,
		constants.UserTypeStudent,
		constants.UserTypeTutor,
	} {
		ops.Get("/:country/ops-"+kind+"-list", userController.List(kind))
		ops.Post("/:country/ops-"+kind+"-filter", userController.Filter(kind, false))
		ops.Post("/:country/ops-"+kind+"-filter/get-all", userController.Filter(kind, true))
		ops.Get("/ops-"+kind+"-details/:uuid", userController.Details(kind))
		ops.Post("/ops-"+kind+"-details/:uuid", userController.UpdateDetails(kind))
		ops.Post("/ops-change-"+kind+"-verification/:uuid/:status", userController.ChangeVerification(kind))
		ops.Post("/add-ops-note/"+kind+"/:uuid", userController.AddNote(kind))
		ops.Post("/ops-send-sms-to-"+kind, userController.SendSMS(kind))
		ops.Get("/ops-"+kind+"-sms-log-list/:uuid", userController.SMSLogList(kind))
	}

	// ==========================
	// RFT
	// ==========================
	ops.Post("/ops-rft-create", jobController.RFTCreate)
	ops.Get("/ops-rft-details/:uuid", jobController.RFTDetails)
	ops.Post("/ops-change-rft-rejection/:uuid/:status", jobController.ChangeRFTRejection)
	ops.Post("/:country/ops-rft-filter", jobController.RFTFilter(false))
	ops.Post("/:country/ops-rft-filter/get-all", jobController.RFTFilter(true))
	ops.Post("/ops-rft-to-hot-job/:rft_uuid", jobController.RFTToHotJob)
	ops.Get("/ops-hot-jobs-list-from-rft/:rft_uuid", jobController.HotJobsListFromRFT)
	ops.Post("/add-ops-note/rft/:uuid", jobController.AddRFTNote)

	// ==========================
	// TUITION REQUEST
	// ==========================
	ops.Get("/ops-tuition-request-details/:uuid", jobController.TuitionRequestDetails)
	ops.Post("/ops-change-tuition-request-rejection/:uuid/:status", jobController.ChangeTuitionRequestRejection)
	ops.Post("/:country/ops-tuition-request-filter", jobController.TuitionRequestFilter(false))
	ops.Post("/:country/ops-tuition-request-filter/get-all", jobController.TuitionRequestFilter(true))
	ops.Post("/ops-parent-confirm-tuition-request/:uuid", jobController.ParentConfirm)
	ops.Post("/add-ops-note/tuition-request/:uuid", jobController.AddTuitionRequestNote)
}
