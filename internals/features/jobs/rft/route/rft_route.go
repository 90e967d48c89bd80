// file: internals/features/jobs/rft/route/rft_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/jobs/rft/controller"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func RFTRoutes(api fiber.Router, db *gorm.DB) {
	rftController := controller.NewRFTController(db)

	parentOnly := authMiddleware.UserAuthMiddleware(db, constants.UserTypeParent)

	api.Post("/rft-create", parentOnly, rftController.Create)
	api.Get("/rft-list", parentOnly, rftController.List)
	api.Get("/rft-details/:uuid", parentOnly, rftController.Details)
}
