// internals/middlewares/auth/user_auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yoda_backend/internals/configs"
	"yoda_backend/internals/constants"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
)

// Keys di c.Locals
const (
	LocUserType = "user_type"
	LocParent   = "auth_parent"
	LocStudent  = "auth_student"
	LocTutor    = "auth_tutor"
)

// UserAuthMiddleware — JWT auth untuk parent/student/tutor. User yang
// suspended/deleted difilter di query, jadi tokennya otomatis mati.
// Sekalian bump last_active_at (maks 1×/hari) dan simpan mobile_user_id
// untuk push notification.
func UserAuthMiddleware(db *gorm.DB, allowedTypes ...string) fiber.Handler {
	allowed := map[string]struct{}{}
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		tokenString := helper.GetAuthJWT(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := helper.ParseToken(tokenString, configs.JWTSecret)
		if err != nil {
			log.Println("[WARNING] Gagal parse user token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		userType, _ := claims["user_type"].(string)
		if _, ok := allowed[userType]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}

		rawUUID, _ := claims["uuid"].(string)
		userUUID, err := uuid.Parse(rawUUID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		mobileUserID := strings.TrimSpace(c.Get("Mobile-User-Id"))
		now := time.Now().UTC()

		switch userType {
		case constants.UserTypeParent:
			var parent userModel.Parent
			if err := activeUserQuery(db, &parent, userUUID); err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			touchUser(db, "parents", &parent.UserCommon, mobileUserID, now)
			c.Locals(LocParent, &parent)

		case constants.UserTypeStudent:
			var student userModel.Student
			if err := activeUserQuery(db, &student, userUUID); err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			touchUser(db, "students", &student.UserCommon, mobileUserID, now)
			c.Locals(LocStudent, &student)

		case constants.UserTypeTutor:
			var tutor userModel.Tutor
			if err := db.
				Preload("UndergraduateUniversityAB").
				Preload("SchoolAB").
				Preload("CollegeAB").
				Where("uuid = ? AND is_suspended_by_ops = FALSE AND is_deleted = FALSE", userUUID).
				First(&tutor).Error; err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			touchUser(db, "tutors", &tutor.UserCommon, mobileUserID, now)
			c.Locals(LocTutor, &tutor)

		default:
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}

		c.Locals(LocUserType, userType)
		return c.Next()
	}
}

func activeUserQuery(db *gorm.DB, dest interface{}, userUUID uuid.UUID) error {
	return db.
		Where("uuid = ? AND is_suspended_by_ops = FALSE AND is_deleted = FALSE", userUUID).
		First(dest).Error
}

func touchUser(db *gorm.DB, table string, u *userModel.UserCommon, mobileUserID string, now time.Time) {
	updates := u.ActiveDailyUpdates(now)
	if mobileUserID != "" && (u.MobileUserID == nil || *u.MobileUserID != mobileUserID) {
		u.MobileUserID = &mobileUserID
		if updates == nil {
			updates = map[string]interface{}{}
		}
		updates["mobile_user_id"] = mobileUserID
	}
	if len(updates) > 0 {
		if err := db.Table(table).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] Gagal update %s aktivitas harian: %v", table, err)
		}
	}
}

// GetParent / GetStudent / GetTutor — accessor Locals untuk controller.
func GetParent(c *fiber.Ctx) *userModel.Parent {
	p, _ := c.Locals(LocParent).(*userModel.Parent)
	return p
}

func GetStudent(c *fiber.Ctx) *userModel.Student {
	s, _ := c.Locals(LocStudent).(*userModel.Student)
	return s
}

func GetTutor(c *fiber.Ctx) *userModel.Tutor {
	t, _ := c.Locals(LocTutor).(*userModel.Tutor)
	return t
}
