package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"yoda_backend/internals/configs"
)

const userTokenTTL = 90 * 24 * time.Hour

// CreateUserToken membuat JWT untuk parent/student/tutor. Claim `uuid` +
// `user_type` dipakai middleware auth untuk resolve user aktif.
func CreateUserToken(userUUID uuid.UUID, userType string) (string, error) {
	claims := jwt.MapClaims{
		"uuid":      userUUID.String(),
		"user_type": userType,
		"exp":       time.Now().Add(userTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// CreateOpsToken membuat JWT untuk akun ops (claim `account_id` +
// `account_type`).
func CreateOpsToken(accountID uint, accountType string) (string, error) {
	claims := jwt.MapClaims{
		"account_id":   accountID,
		"account_type": accountType,
		"exp":          time.Now().Add(userTokenTTL).Unix(),
		"iat":          time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.OpsJWTSecret))
}

func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetAuthJWT mengambil token dari header Auth-JWT (header lama aplikasi
// mobile) atau Authorization: Bearer.
func GetAuthJWT(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Get("Auth-JWT")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
