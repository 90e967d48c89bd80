// file: internals/features/ops/service/verification_service.go
package service

import (
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
	notifService "yoda_backend/internals/features/notifications/service"
)

// ChangeUserVerification — toggle is_verified_by_ops. Saat parent
// diverifikasi, direct request yang notifikasinya sempat ditahan
// (notification_created=false) di-backfill: tutor baru tahu ada request
// setelah parent-nya lolos screening.
func ChangeUserVerification(db *gorm.DB, table string, userID uint, verified bool) error {
	var notifIDs []uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).
			Where("id = ?", userID).
			Update("is_verified_by_ops", verified).Error; err != nil {
			return err
		}

		if table != "parents" || !verified {
			return nil
		}

		var pending []trModel.TuitionRequest
		if err := tx.
			Where("parent_id = ? AND notification_created = FALSE", userID).
			Where("is_rejected_by_tutor = FALSE AND is_rejected_by_ops = FALSE").
			Find(&pending).Error; err != nil {
			return err
		}

		for _, req := range pending {
			id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
				TutorID:          &req.TutorID,
				NotificationType: constants.NotificationNewDirectRequest,
				Title:            "New direct request",
				Body:             "A guardian has requested you directly for a tuition. Open the app to respond.",
				URL:              "/tutor/jobs/" + req.UUID.String(),
				SendExternally:   true,
			})
			if err != nil {
				return err
			}
			notifIDs = append(notifIDs, id)

			if err := tx.Model(&trModel.TuitionRequest{}).
				Where("id = ?", req.ID).
				Update("notification_created", true).Error; err != nil {
				return err
			}
		}

		// Kabari user-nya juga.
		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			ParentID:         &userID,
			NotificationType: constants.NotificationAccountVerifiedByOps,
			Title:            "Account verified",
			Body:             "Your account has been verified. Tutors can now see your requests.",
			SendExternally:   true,
		})
		if err != nil {
			return err
		}
		notifIDs = append(notifIDs, id)
		return nil
	})
	if err != nil {
		return err
	}

	notifService.Enqueue(notifIDs...)
	return nil
}
