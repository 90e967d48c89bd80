// file: internals/scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	notifService "yoda_backend/internals/features/notifications/service"
	authService "yoda_backend/internals/features/users/auth/service"
)

// Start memasang cron job background: bersih-bersih OTP basi dan retry
// notifikasi yang belum terkirim keluar (SMS/push).
func Start(db *gorm.DB, dispatcher *notifService.Dispatcher) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() {
		authService.ExpireStaleOTPs(db)
	}); err != nil {
		log.Printf("[ERROR] Gagal daftar job expire OTP: %v", err)
	}

	if _, err := c.AddFunc("*/2 * * * *", func() {
		dispatcher.SweepUnsent(2*time.Minute, 100)
	}); err != nil {
		log.Printf("[ERROR] Gagal daftar job sweep notifikasi: %v", err)
	}

	c.Start()
	log.Println("[INFO] Scheduler aktif (OTP cleanup + notification sweep)")
	return c
}
