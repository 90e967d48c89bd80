// file: internals/features/transactions/route/transaction_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/transactions/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func TransactionRoutes(api fiber.Router, db *gorm.DB) {
	transactionController := controller.NewTransactionController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)
	studentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeStudent)
	tutorOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeTutor)
	opsOnly := authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountOperations)

	api.Get("/parent-transaction-list", parentOnly, transactionController.ParentList)
	api.Get("/student-transaction-list", studentOnly, transactionController.StudentList)
	api.Get("/tutor-transaction-list", tutorOnly, transactionController.TutorList)

	api.Post("/upgrade-tutor-to-premium-with-points", tutorOnly, transactionController.UpgradeWithPoints)
	api.Post("/payment-create", tutorOnly, transactionController.PaymentCreate)

	api.Post("/ops-upgrade-tutor-to-premium/:tutor_uuid", opsOnly, transactionController.OpsUpgradeTutor)
	api.Get("/ops-tutor-transaction-list/:tutor_uuid", opsOnly, transactionController.OpsTutorTransactionList)
	api.Get("/ops-tutor-transaction-list-all", opsOnly, transactionController.OpsTutorTransactionListAll)
}

// WebhookRoutes dipasang di luar gate X-API-Key; Midtrans yang manggil.
func WebhookRoutes(app *fiber.App, db *gorm.DB) {
	transactionController := controller.NewTransactionController(db)
	app.Post("/api/payment-webhook", transactionController.Webhook)
}
