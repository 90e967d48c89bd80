// file: internals/features/notifications/service/notification_service.go
package service

import (
	"gorm.io/gorm"

	notifModel "yoda_backend/internals/features/notifications/model"
)

// NotifyInput — satu notifikasi untuk satu penerima. Isi tepat satu FK.
type NotifyInput struct {
	ParentID  *uint
	StudentID *uint
	TutorID   *uint

	NotificationType string
	Title            string
	Body             string
	URL              string

	// true = juga dikirim SMS/push setelah commit (outbox).
	SendExternally bool
}

// CreateInTx menulis baris notifikasi DALAM transaksi pemanggil, jadi
// notifikasi dan perubahan state-nya commit/rollback bareng. ID yang
// dikembalikan dipakai untuk Enqueue setelah commit.
func CreateInTx(tx *gorm.DB, in NotifyInput) (uint, error) {
	n := notifModel.Notification{
		ParentID:         in.ParentID,
		StudentID:        in.StudentID,
		TutorID:          in.TutorID,
		NotificationType: in.NotificationType,
		Title:            in.Title,
		Body:             in.Body,
		URL:              in.URL,
		SendExternally:   in.SendExternally,
	}
	if err := tx.Create(&n).Error; err != nil {
		return 0, err
	}
	return n.ID, nil
}
