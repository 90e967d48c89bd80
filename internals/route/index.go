// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rftRoute "yoda_backend/internals/features/jobs/rft/route"
	trRoute "yoda_backend/internals/features/jobs/tuition_requests/route"
	notificationRoute "yoda_backend/internals/features/notifications/route"
	opsRoute "yoda_backend/internals/features/ops/route"
	referenceRoute "yoda_backend/internals/features/references/route"
	reviewRoute "yoda_backend/internals/features/reviews/route"
	transactionRoute "yoda_backend/internals/features/transactions/route"
	authRoute "yoda_backend/internals/features/users/auth/route"
	userRoute "yoda_backend/internals/features/users/user/route"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Webhook Midtrans di luar gate API key (server-to-server).
	transactionRoute.WebhookRoutes(app, db)

	// Semua endpoint aplikasi di bawah /api, wajib X-API-Key.
	api := app.Group("/api", authMiddleware.APIKeyMiddleware())

	log.Println("[INFO] Mounting auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting user routes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Mounting reference routes...")
	referenceRoute.ReferenceRoutes(api, db)

	log.Println("[INFO] Mounting job routes...")
	rftRoute.RFTRoutes(api, db)
	trRoute.TuitionRequestRoutes(api, db)

	log.Println("[INFO] Mounting notification routes...")
	notificationRoute.NotificationRoutes(api, db)

	log.Println("[INFO] Mounting review routes...")
	reviewRoute.ReviewRoutes(api, db)

	log.Println("[INFO] Mounting transaction routes...")
	transactionRoute.TransactionRoutes(api, db)

	log.Println("[INFO] Mounting ops routes...")
	opsRoute.OpsRoutes(api, db)
}
