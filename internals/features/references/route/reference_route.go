// file: internals/features/references/route/reference_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "yoda_backend/internals/features/references/controller"
)

// Daftar referensi dipakai form sign-up & filter; cukup gate API key.
func ReferenceRoutes(api fiber.Router, db *gorm.DB) {
	referenceController := controller.NewReferenceController(db)

	api.Get("/:country/area-list", referenceController.AreaList)
	api.Get("/:country/offline-subject-list", referenceController.OfflineSubjectList)
	api.Get("/:country/offline-subject-list/:type", referenceController.OfflineSubjectList)
	api.Get("/:country/online-subject-list", referenceController.OnlineSubjectList)
	api.Get("/:country/school-list", referenceController.SchoolList)
	api.Get("/:country/university-list", referenceController.UniversityList)
	api.Get("/university-field-of-study-list", referenceController.UniversityFieldOfStudyList)
	api.Get("/university-degree-list", referenceController.UniversityDegreeList)
}
