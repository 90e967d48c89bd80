// file: internals/features/sms/service/sms_service.go
package service

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"

	"yoda_backend/internals/configs"
	"yoda_backend/internals/constants"
	smsModel "yoda_backend/internals/features/sms/model"
)

const bdGatewayURL = "https://smsplus.sslwireless.com/api/v3/send-sms"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// UserRef — FK opsional ke pemilik nomor, untuk sms_logs.
type UserRef struct {
	ParentID  *uint
	StudentID *uint
	TutorID   *uint
}

// SendSMS kirim lewat gateway sesuai negara lalu catat ke sms_logs.
// Kegagalan gateway hanya dilog; caller tidak perlu gagal gara-gara SMS.
func SendSMS(db *gorm.DB, country, phoneNumber, message string, ref UserRef) {
	switch country {
	case constants.CountryBD:
		sendViaBDGateway(phoneNumber, message)
	default:
		log.Printf("[WARNING] Tidak ada gateway SMS untuk negara %s, skip kirim ke %s", country, phoneNumber)
	}

	logRow := smsModel.SMSLog{
		ParentID:    ref.ParentID,
		StudentID:   ref.StudentID,
		TutorID:     ref.TutorID,
		PhoneNumber: phoneNumber,
		Message:     message,
	}
	if err := db.Create(&logRow).Error; err != nil {
		log.Println("[ERROR] Gagal simpan sms_logs:", err)
	}
}

// sendViaBDGateway — SSL Wireless, form-encoded. Nomor dikirim tanpa "+".
func sendViaBDGateway(phoneNumber, message string) {
	if configs.BDSMSSenderPass == "" {
		log.Println("[WARNING] BD_SMS_SENDER_PASSWORD belum diset, SMS tidak terkirim")
		return
	}

	form := url.Values{}
	form.Set("api_token", configs.BDSMSSenderPass)
	form.Set("sid", "YODA")
	form.Set("msisdn", strings.TrimPrefix(phoneNumber, "+"))
	form.Set("sms", message)
	form.Set("csms_id", time.Now().UTC().Format("20060102150405.000000"))

	resp, err := httpClient.PostForm(bdGatewayURL, form)
	if err != nil {
		log.Println("[ERROR] Gagal kirim SMS via SSL Wireless:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[ERROR] Gateway SMS balas %d: %s", resp.StatusCode, string(body))
	}
}
