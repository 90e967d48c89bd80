// file: internals/features/reviews/service/review_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoda_backend/internals/constants"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
	notifService "yoda_backend/internals/features/notifications/service"
	reviewDTO "yoda_backend/internals/features/reviews/dto"
	reviewModel "yoda_backend/internals/features/reviews/model"
	userModel "yoda_backend/internals/features/users/user/model"
)

var ErrAlreadyReviewed = errors.New("tuition request already reviewed")

// CreateReview — parent menilai tutor setelah job confirmed. Satu review
// per tuition request (unique index); agregat tutor dihitung sebagai
// running average di transaksi yang sama. parentID nil = dibuat ops
// atas nama parent pemilik request (review via telepon).
func CreateReview(db *gorm.DB, parentID *uint, tuitionRequestUUID uuid.UUID, in reviewDTO.CreateReviewRequest) (*reviewModel.Review, error) {
	var review reviewModel.Review
	var notifID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uuid = ?", tuitionRequestUUID).
			Where("status = ?", constants.StatusConfirmed)
		if parentID != nil {
			q = q.Where("parent_id = ?", *parentID)
		}

		var req trModel.TuitionRequest
		if err := q.First(&req).Error; err != nil {
			return err
		}
		if req.ReviewID != nil {
			return ErrAlreadyReviewed
		}

		review = reviewModel.Review{
			ParentID:            req.ParentID,
			TutorID:             req.TutorID,
			TuitionRequestID:    req.ID,
			TutorBehavior:       in.TutorBehavior,
			WayOfTeaching:       in.WayOfTeaching,
			CommunicationSkills: in.CommunicationSkills,
			TimeManagement:      in.TimeManagement,
		}
		if err := tx.Create(&review).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrAlreadyReviewed
			}
			return err
		}

		if err := tx.Model(&req).Update("review_id", review.ID).Error; err != nil {
			return err
		}

		var tutor userModel.Tutor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tutor, req.TutorID).Error; err != nil {
			return err
		}
		n := float64(tutor.NumberOfReviews)
		if err := tx.Model(&tutor).Updates(map[string]interface{}{
			"tutor_behavior":       runningAverage(tutor.TutorBehavior, n, in.TutorBehavior),
			"way_of_teaching":      runningAverage(tutor.WayOfTeaching, n, in.WayOfTeaching),
			"communication_skills": runningAverage(tutor.CommunicationSkills, n, in.CommunicationSkills),
			"time_management":      runningAverage(tutor.TimeManagement, n, in.TimeManagement),
			"number_of_reviews":    tutor.NumberOfReviews + 1,
		}).Error; err != nil {
			return err
		}

		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			TutorID:          &req.TutorID,
			NotificationType: constants.NotificationReviewReceived,
			Title:            "New review",
			Body:             "A guardian has reviewed your tuition. Check your updated ratings.",
			URL:              "/tutor/reviews",
			SendExternally:   false,
		})
		if err != nil {
			return err
		}
		notifID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifService.Enqueue(notifID)
	return &review, nil
}

func runningAverage(current, n float64, incoming int) float64 {
	return (current*n + float64(incoming)) / (n + 1)
}
