package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MainAPIKey      string
	JWTSecret       string
	OpsJWTSecret    string
	SendgridAPIKey  string
	BDSMSSenderPass string
	MidtransKey     string
	GoogleClientID  string
	OneSignalAppID  string
	OneSignalAPIKey string
	OSSEndpoint     string
	OSSAccessKeyID  string
	OSSAccessSecret string
	OSSBucket       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	}

	MainAPIKey = GetEnv("MAIN_API_KEY")
	JWTSecret = GetEnv("AUTH_JWT_SECRET")
	OpsJWTSecret = GetEnv("OPS_JWT_SECRET")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	BDSMSSenderPass = GetEnv("BD_SMS_SENDER_PASSWORD")
	MidtransKey = GetEnv("MIDTRANS_SERVER_KEY")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	OneSignalAppID = GetEnv("ONESIGNAL_APP_ID")
	OneSignalAPIKey = GetEnv("ONESIGNAL_API_KEY")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	OSSAccessKeyID = GetEnv("OSS_ACCESS_KEY_ID")
	OSSAccessSecret = GetEnv("OSS_ACCESS_KEY_SECRET")
	OSSBucket = GetEnv("OSS_BUCKET")

	if MainAPIKey == "" {
		log.Println("❌ MAIN_API_KEY belum diset!")
	}
	if JWTSecret == "" {
		log.Println("❌ AUTH_JWT_SECRET belum diset!")
	}
	if OpsJWTSecret == "" {
		log.Println("❌ OPS_JWT_SECRET belum diset!")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
