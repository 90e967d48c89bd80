// internals/middlewares/auth/ops_auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yoda_backend/internals/configs"
	"yoda_backend/internals/constants"
	opsModel "yoda_backend/internals/features/ops/model"
	helper "yoda_backend/internals/helpers"
)

const LocOpsAccount = "auth_ops_account"

// OpsAuthMiddleware — JWT auth untuk tim internal. Admin selalu lolos.
func OpsAuthMiddleware(db *gorm.DB, acceptedTypes ...string) fiber.Handler {
	accepted := map[string]struct{}{constants.OpsAccountAdmin: {}}
	for _, t := range acceptedTypes {
		accepted[t] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		tokenString := helper.GetAuthJWT(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := helper.ParseToken(tokenString, configs.OpsJWTSecret)
		if err != nil {
			log.Println("[WARNING] Gagal parse ops token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		rawID, ok := claims["account_id"].(float64)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var account opsModel.OpsAccount
		if err := db.First(&account, uint(rawID)).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		if _, ok := accepted[account.AccountType]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}

		c.Locals(LocOpsAccount, &account)
		return c.Next()
	}
}

func GetOpsAccount(c *fiber.Ctx) *opsModel.OpsAccount {
	a, _ := c.Locals(LocOpsAccount).(*opsModel.OpsAccount)
	return a
}
