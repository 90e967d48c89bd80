// file: internals/features/notifications/service/dispatcher.go
package service

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"yoda_backend/internals/configs"
	notifModel "yoda_backend/internals/features/notifications/model"
	smsService "yoda_backend/internals/features/sms/service"
	userModel "yoda_backend/internals/features/users/user/model"
)

// Dispatcher — worker tunggal yang mengirim notifikasi keluar (SMS/push)
// dari outbox. Enqueue tidak pernah blokir request; kalau buffer penuh,
// sweep cron yang memungut sisanya.
type Dispatcher struct {
	db    *gorm.DB
	queue chan uint
}

var Default *Dispatcher

func StartDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan uint, 256),
	}
	go d.run()
	Default = d
	return d
}

// Enqueue — panggil SETELAH transaksi commit.
func (d *Dispatcher) Enqueue(notificationIDs ...uint) {
	for _, id := range notificationIDs {
		select {
		case d.queue <- id:
		default:
			log.Println("[WARNING] Antrian notifikasi penuh, menunggu sweep untuk id", id)
		}
	}
}

// Enqueue via dispatcher global; no-op kalau belum di-start (mis. unit test).
func Enqueue(notificationIDs ...uint) {
	if Default != nil {
		Default.Enqueue(notificationIDs...)
	}
}

func (d *Dispatcher) run() {
	for id := range d.queue {
		d.deliver(id)
	}
}

func (d *Dispatcher) deliver(notificationID uint) {
	var n notifModel.Notification
	if err := d.db.First(&n, notificationID).Error; err != nil {
		log.Println("[ERROR] Notifikasi tidak ditemukan untuk dikirim:", err)
		return
	}
	if !n.SendExternally || n.SentExternallyAt != nil {
		return
	}

	phone, country, mobileUserID, ref, err := d.loadRecipient(&n)
	if err != nil {
		log.Println("[ERROR] Gagal load penerima notifikasi:", err)
		return
	}

	if phone != "" {
		smsService.SendSMS(d.db, country, phone, n.Title+" - "+n.Body, ref)
	}
	if mobileUserID != "" {
		sendPush(mobileUserID, n.Title, n.Body, n.URL)
	}

	now := time.Now().UTC()
	if err := d.db.Model(&notifModel.Notification{}).
		Where("id = ?", n.ID).
		Update("sent_externally_at", now).Error; err != nil {
		log.Println("[ERROR] Gagal tandai notifikasi terkirim:", err)
	}
}

func (d *Dispatcher) loadRecipient(n *notifModel.Notification) (phone, country, mobileUserID string, ref smsService.UserRef, err error) {
	var u userModel.UserCommon

	switch {
	case n.ParentID != nil:
		var parent userModel.Parent
		if err = d.db.First(&parent, *n.ParentID).Error; err != nil {
			return
		}
		u, ref.ParentID = parent.UserCommon, n.ParentID
	case n.StudentID != nil:
		var student userModel.Student
		if err = d.db.First(&student, *n.StudentID).Error; err != nil {
			return
		}
		u, ref.StudentID = student.UserCommon, n.StudentID
	case n.TutorID != nil:
		var tutor userModel.Tutor
		if err = d.db.First(&tutor, *n.TutorID).Error; err != nil {
			return
		}
		u, ref.TutorID = tutor.UserCommon, n.TutorID
	default:
		return
	}

	phone, country = u.PhoneNumber, u.Country
	if u.MobileUserID != nil {
		mobileUserID = *u.MobileUserID
	}
	return
}

// SweepUnsent — dipanggil cron: pungut notifikasi external yang belum
// terkirim (antrian penuh / proses restart sebelum sempat kirim).
func (d *Dispatcher) SweepUnsent(olderThan time.Duration, limit int) {
	cutoff := time.Now().UTC().Add(-olderThan)
	var ids []uint
	if err := d.db.Model(&notifModel.Notification{}).
		Where("send_externally = TRUE AND sent_externally_at IS NULL AND created_at < ?", cutoff).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		log.Println("[ERROR] Sweep notifikasi gagal:", err)
		return
	}
	if len(ids) > 0 {
		log.Printf("[INFO] Sweep memungut %d notifikasi belum terkirim", len(ids))
		d.Enqueue(ids...)
	}
}

// sendPush — OneSignal REST, target per external user id (Mobile-User-Id
// yang disimpan middleware auth).
func sendPush(mobileUserID, title, body, url string) {
	if configs.OneSignalAppID == "" || configs.OneSignalAPIKey == "" {
		return
	}

	payload := map[string]interface{}{
		"app_id":                    configs.OneSignalAppID,
		"include_external_user_ids": []string{mobileUserID},
		"headings":                  map[string]string{"en": title},
		"contents":                  map[string]string{"en": body},
	}
	if url != "" {
		payload["url"] = url
	}

	raw, err := sonic.Marshal(payload)
	if err != nil {
		log.Println("[ERROR] Gagal marshal payload push:", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, "https://onesignal.com/api/v1/notifications", bytes.NewReader(raw))
	if err != nil {
		log.Println("[ERROR] Gagal bikin request push:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+configs.OneSignalAPIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Println("[ERROR] Gagal kirim push:", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[ERROR] OneSignal balas %d: %s", resp.StatusCode, string(respBody))
	}
}
