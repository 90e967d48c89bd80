// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	controller "yoda_backend/internals/features/users/auth/controller"
	opsController "yoda_backend/internals/features/ops/controller"
	rateLimiter "yoda_backend/internals/middlewares"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)
	opsAuthController := opsController.NewOpsAuthController(db)

	// ==========================
	// SIGN-UP (public)
	// ==========================
	api.Post("/parent-sign-up", authController.ParentSignUp)
	api.Post("/student-sign-up", authController.StudentSignUp)
	api.Post("/tutor-sign-up", authController.TutorSignUp)

	// ==========================
	// LOGIN VIA OTP (rate limited per IP)
	// ==========================
	otp := rateLimiter.OTPRateLimiter()
	api.Post("/parent-login-set-otp", otp, authController.LoginSetOTP(constants.UserTypeParent))
	api.Post("/student-login-set-otp", otp, authController.LoginSetOTP(constants.UserTypeStudent))
	api.Post("/tutor-login-set-otp", otp, authController.LoginSetOTP(constants.UserTypeTutor))

	api.Post("/parent-login-confirm-otp", otp, authController.LoginConfirmOTP(constants.UserTypeParent))
	api.Post("/student-login-confirm-otp", otp, authController.LoginConfirmOTP(constants.UserTypeStudent))
	api.Post("/tutor-login-confirm-otp", otp, authController.LoginConfirmOTP(constants.UserTypeTutor))

	// ==========================
	// GOOGLE CONNECT (user login dulu)
	// ==========================
	api.Post("/google-connect",
		authMiddleware.UserAuthMiddleware(db,
			constants.UserTypeParent, constants.UserTypeStudent, constants.UserTypeTutor),
		authController.GoogleConnect)

	// ==========================
	// OPS
	// ==========================
	api.Post("/ops-login", otp, opsAuthController.Login)

	opsOnly := authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountOperations)
	api.Post("/ops-parent-sign-up", opsOnly, authController.OpsParentSignUp)
	api.Post("/ops-student-sign-up", opsOnly, authController.OpsStudentSignUp)

	// Sign-up tutor lewat tim lapangan / campus ambassador.
	api.Post("/activation-tutor-sign-up",
		authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountActivationManager),
		authController.ActivationTutorSignUp)
	api.Post("/campus-ambassador-tutor-sign-up",
		authMiddleware.OpsAuthMiddleware(db, constants.OpsAccountCampusAmbassador),
		authController.CampusAmbassadorTutorSignUp)
}
