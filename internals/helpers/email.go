package helper

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"yoda_backend/internals/configs"
)

const emailFromAddress = "noreply@yodabd.com"

// SendEmail mengirim email lewat SendGrid. Gagal kirim hanya dicatat di log
// — tidak pernah menggagalkan request pemanggil.
func SendEmail(toAddress, subject, body string) {
	if configs.SendgridAPIKey == "" {
		log.Println("[WARNING] SENDGRID_API_KEY kosong, email tidak dikirim")
		return
	}

	from := mail.NewEmail("Yoda", emailFromAddress)
	to := mail.NewEmail("", toAddress)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	sg := sendgrid.NewSendClient(configs.SendgridAPIKey)
	resp, err := sg.Send(message)
	if err != nil {
		log.Printf("[ERROR] Gagal kirim email ke %s: %v", toAddress, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("[ERROR] SendGrid status %d untuk %s", resp.StatusCode, toAddress)
	}
}
