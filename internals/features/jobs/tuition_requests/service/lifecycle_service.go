// file: internals/features/jobs/tuition_requests/service/lifecycle_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoda_backend/internals/constants"
	rftModel "yoda_backend/internals/features/jobs/rft/model"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
	notifService "yoda_backend/internals/features/notifications/service"
	userModel "yoda_backend/internals/features/users/user/model"
)

// ErrDuplicateHotJob — RFT yang sama sudah pernah dipromosikan ke tutor
// yang sama (ketahan unique index parent_rft_id+tutor_id).
var ErrDuplicateHotJob = errors.New("hot job already exists for this tutor")

// ==============================
// CREATE
// ==============================

// CreateDirectRequest — parent kirim request langsung ke satu tutor.
// req sudah diisi field murid/tuition dari form; fungsi ini melengkapi
// state awal, menyimpan, dan bikin notifikasi tutor dalam satu transaksi.
// Kalau parent belum diverifikasi ops, notifikasi DITAHAN
// (notification_created=false) sampai ops memverifikasi.
func CreateDirectRequest(db *gorm.DB, parent *userModel.Parent, tutor *userModel.Tutor, req *trModel.TuitionRequest) error {
	req.Status = constants.StatusDirectRequest
	req.JobOrigin = constants.JobOriginDirectRequest
	req.ParentID = parent.ID
	req.TutorID = tutor.ID
	req.ParentRFTID = nil
	req.Country = parent.Country
	req.NotificationCreated = parent.IsVerifiedByOps

	var notifID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		if !req.NotificationCreated {
			return nil
		}
		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			TutorID:          &tutor.ID,
			NotificationType: constants.NotificationNewDirectRequest,
			Title:            "New direct request",
			Body:             "A guardian has requested you directly for a tuition. Open the app to respond.",
			URL:              "/tutor/jobs/" + req.UUID.String(),
			SendExternally:   true,
		})
		if err != nil {
			return err
		}
		notifID = id
		return nil
	})
	if err != nil {
		return err
	}
	if notifID != 0 {
		notifService.Enqueue(notifID)
	}
	return nil
}

// PromoteRFTToHotJob — ops mempromosikan RFT jadi hot job untuk satu
// tutor. Promosi ganda (rft, tutor) yang sama ditolak DB, bukan dicek
// race-prone di aplikasi.
func PromoteRFTToHotJob(db *gorm.DB, rft *rftModel.RequestForTutor, tutor *userModel.Tutor) (*trModel.TuitionRequest, error) {
	req := &trModel.TuitionRequest{
		Status:      constants.StatusHotJob,
		JobOrigin:   constants.JobOriginHotJob,
		ParentID:    rft.ParentID,
		TutorID:     tutor.ID,
		ParentRFTID: &rft.ID,
		Country:     rft.Country,

		NoteByParent:                   rft.NoteByParent,
		StudentGender:                  rft.StudentGender,
		StudentSchool:                  rft.StudentSchool,
		StudentClass:                   rft.StudentClass,
		StudentMedium:                  rft.StudentMedium,
		StudentBanglaMediumVersion:     rft.StudentBanglaMediumVersion,
		StudentEnglishMediumCurriculum: rft.StudentEnglishMediumCurriculum,

		TuitionAreaID:           rft.TuitionAreaID,
		TeachingPlacePreference: rft.TeachingPlacePreference,
		NumberOfDaysPerWeek:     rft.NumberOfDaysPerWeek,
		Salary:                  rft.Salary,
		IsSalaryNegotiable:      rft.IsSalaryNegotiable,
		SubjectIDs:              rft.SubjectIDs,

		NotificationCreated: true,
	}

	var notifID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateHotJob
			}
			return err
		}
		id, err := notifService.CreateInTx(tx, notifService.NotifyInput{
			TutorID:          &tutor.ID,
			NotificationType: constants.NotificationNewHotJob,
			Title:            "New hot job",
			Body:             "A tuition job matching your profile is waiting for you. Apply before it is gone.",
			URL:              "/tutor/jobs/" + req.UUID.String(),
			SendExternally:   true,
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
	return req, nil
}

// ==============================
// TUTOR SIDE
// ==============================

// AcceptDirectRequest — tutor ambil direct request miliknya. Lewat gate
// kuota direct; habis kuota = ErrQuotaExceeded (402), tidak ada state
// yang berubah.
func AcceptDirectRequest(db *gorm.DB, tutor *userModel.Tutor, requestUUID uuid.UUID, now time.Time) (*trModel.TuitionRequest, error) {
	return tutorTakesJob(db, tutor, requestUUID, now, trModel.CounterKindDirect)
}

// ApplyToHotJob — tutor apply ke hot job miliknya. Gate kuota hot.
func ApplyToHotJob(db *gorm.DB, tutor *userModel.Tutor, requestUUID uuid.UUID, now time.Time) (*trModel.TuitionRequest, error) {
	return tutorTakesJob(db, tutor, requestUUID, now, trModel.CounterKindHot)
}

func tutorTakesJob(db *gorm.DB, tutor *userModel.Tutor, requestUUID uuid.UUID, now time.Time, kind string) (*trModel.TuitionRequest, error) {
	var req trModel.TuitionRequest
	var notifIDs []uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockOwnedRequest(tx, &req, requestUUID, "tutor_id", tutor.ID); err != nil {
			return err
		}

		var next string
		var err error
		if kind == trModel.CounterKindHot {
			next, err = NextStatusOnApply(req.Status)
		} else {
			next, err = NextStatusOnAccept(req.Status)
		}
		if err != nil {
			return err
		}

		if err := gateAndRecordAcceptance(tx, tutor.ID, tutor.GetAccountType(now), kind, now); err != nil {
			return err
		}

		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status": next,
		}).Error; err != nil {
			return err
		}
		req.Status = next
		if err := tx.Model(&userModel.Tutor{}).
			Where("id = ?", tutor.ID).
			Update("last_applied_to_job_at", now).Error; err != nil {
			return err
		}

		for _, in := range tutorResponseNotifications(kind, tutor.FullName, &req) {
			id, err := notifService.CreateInTx(tx, in)
			if err != nil {
				return err
			}
			notifIDs = append(notifIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifService.Enqueue(notifIDs...)
	return &req, nil
}

// tutorResponseNotifications — accept/apply mengabari dua pihak: parent
// dapat kabar ada tutor merespons, tutor dapat catatan aksinya sendiri
// (in-app saja, tanpa SMS).
func tutorResponseNotifications(kind, tutorName string, req *trModel.TuitionRequest) []notifService.NotifyInput {
	notifType := constants.NotificationRequestAccepted
	parentBody := fmt.Sprintf("%s has accepted your request. Review their profile and confirm to proceed.", tutorName)
	tutorBody := "You have accepted the direct request. Wait for the guardian's confirmation."
	if kind == trModel.CounterKindHot {
		notifType = constants.NotificationHotJobApplied
		parentBody = fmt.Sprintf("%s has applied to your tuition job. Review their profile and confirm to proceed.", tutorName)
		tutorBody = "You have applied to the tuition job. Wait for the guardian's confirmation."
	}
	return []notifService.NotifyInput{
		{
			ParentID:         &req.ParentID,
			NotificationType: notifType,
			Title:            "A tutor responded",
			Body:             parentBody,
			URL:              "/parent/jobs/" + req.UUID.String(),
			SendExternally:   true,
		},
		{
			TutorID:          &req.TutorID,
			NotificationType: notifType,
			Title:            "Response recorded",
			Body:             tutorBody,
			URL:              "/tutor/jobs/" + req.UUID.String(),
		},
	}
}

// RejectByTutor — tutor mundur dari job yang belum confirmed, termasuk
// yang sudah in-process/waiting; setelah confirmed pembatalan lewat ops.
func RejectByTutor(db *gorm.DB, tutor *userModel.Tutor, requestUUID uuid.UUID) (*trModel.TuitionRequest, error) {
	var req trModel.TuitionRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockOwnedRequest(tx, &req, requestUUID, "tutor_id", tutor.ID); err != nil {
			return err
		}
		if !CanTutorReject(req.Status) {
			return ErrNotEligible
		}
		if err := tx.Model(&req).Update("is_rejected_by_tutor", true).Error; err != nil {
			return err
		}
		req.IsRejectedByTutor = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ==============================
// CONFIRM (dua arah)
// ==============================

// ConfirmByTutor / ConfirmByParent — konfirmasi bergantian. Pihak kedua
// menutup job: confirmation_date terisi, nomor telepon tutor dibuka,
// last_confirmed_job_at parent terisi, dan RFT asal (kalau hot job)
// ikut flip is_confirmed sekali.
func ConfirmByTutor(db *gorm.DB, tutor *userModel.Tutor, requestUUID uuid.UUID, now time.Time) (*trModel.TuitionRequest, error) {
	return confirm(db, ActorTutor, tutor.ID, tutor.FullName, requestUUID, now)
}

func ConfirmByParent(db *gorm.DB, parent *userModel.Parent, requestUUID uuid.UUID, now time.Time) (*trModel.TuitionRequest, error) {
	return confirm(db, ActorParent, parent.ID, parent.FullName, requestUUID, now)
}

func confirm(db *gorm.DB, actor string, actorID uint, actorName string, requestUUID uuid.UUID, now time.Time) (*trModel.TuitionRequest, error) {
	ownerColumn := "parent_id"
	if actor == ActorTutor {
		ownerColumn = "tutor_id"
	}

	var req trModel.TuitionRequest
	var notifIDs []uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockOwnedRequest(tx, &req, requestUUID, ownerColumn, actorID); err != nil {
			return err
		}

		next, confirmed, err := NextStatusOnConfirm(req.Status, actor)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status": next}
		if confirmed {
			updates["confirmation_date"] = now
			updates["show_tutors_phone_number"] = true
		}
		if err := tx.Model(&req).Updates(updates).Error; err != nil {
			return err
		}
		req.Status = next
		if confirmed {
			req.ConfirmationDate = &now
			req.ShowTutorsPhoneNumber = true
		}

		if confirmed {
			if err := tx.Model(&userModel.Parent{}).
				Where("id = ?", req.ParentID).
				Update("last_confirmed_job_at", now).Error; err != nil {
				return err
			}
			if req.ParentRFTID != nil {
				if err := tx.Model(&rftModel.RequestForTutor{}).
					Where("id = ? AND is_confirmed = FALSE", *req.ParentRFTID).
					Updates(map[string]interface{}{
						"is_confirmed":      true,
						"confirmation_date": now,
					}).Error; err != nil {
					return err
				}
			}

			for _, in := range []notifService.NotifyInput{
				{
					ParentID:         &req.ParentID,
					NotificationType: constants.NotificationJobConfirmed,
					Title:            "Tuition confirmed",
					Body:             "Both sides have confirmed. The tutor's phone number is now visible to you.",
					URL:              "/parent/jobs/" + req.UUID.String(),
					SendExternally:   true,
				},
				{
					TutorID:          &req.TutorID,
					NotificationType: constants.NotificationJobConfirmed,
					Title:            "Tuition confirmed",
					Body:             "Both sides have confirmed. Contact the guardian to schedule your first class.",
					URL:              "/tutor/jobs/" + req.UUID.String(),
					SendExternally:   true,
				},
			} {
				id, err := notifService.CreateInTx(tx, in)
				if err != nil {
					return err
				}
				notifIDs = append(notifIDs, id)
			}
			return nil
		}

		for _, in := range firstConfirmNotifications(actor, actorName, &req) {
			id, err := notifService.CreateInTx(tx, in)
			if err != nil {
				return err
			}
			notifIDs = append(notifIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifService.Enqueue(notifIDs...)
	return &req, nil
}

// firstConfirmNotifications — konfirmasi pertama mengabari dua pihak:
// pihak lain diberi tahu gilirannya, pihak yang konfirmasi dapat catatan
// aksinya sendiri (in-app saja, tanpa SMS).
func firstConfirmNotifications(actor, actorName string, req *trModel.TuitionRequest) []notifService.NotifyInput {
	counterparty := notifService.NotifyInput{
		NotificationType: constants.NotificationTutorConfirmed,
		Title:            "Waiting for your confirmation",
		Body:             fmt.Sprintf("%s has confirmed the tuition. Confirm from your side to finalize.", actorName),
		SendExternally:   true,
	}
	self := notifService.NotifyInput{
		Title: "Confirmation recorded",
		Body:  "You have confirmed the tuition. Waiting for the other side to confirm.",
	}
	if actor == ActorTutor {
		counterparty.ParentID = &req.ParentID
		counterparty.URL = "/parent/jobs/" + req.UUID.String()
		self.NotificationType = constants.NotificationTutorConfirmed
		self.TutorID = &req.TutorID
		self.URL = "/tutor/jobs/" + req.UUID.String()
	} else {
		counterparty.NotificationType = constants.NotificationParentConfirmed
		counterparty.TutorID = &req.TutorID
		counterparty.URL = "/tutor/jobs/" + req.UUID.String()
		self.NotificationType = constants.NotificationParentConfirmed
		self.ParentID = &req.ParentID
		self.URL = "/parent/jobs/" + req.UUID.String()
	}
	return []notifService.NotifyInput{counterparty, self}
}

// ownedRequestQuery — predikat kelayakan transisi. Baris yang sudah
// direject (tutor/ops), notifikasinya masih ditahan, atau parent-nya
// tidak lagi aktif (belum/dicabut verifikasi ops, suspended, deleted)
// tidak pernah kelihatan, jadi jatuhnya record not found.
func ownedRequestQuery(tx *gorm.DB, requestUUID uuid.UUID, ownerColumn string, ownerID uint) *gorm.DB {
	return tx.
		Model(&trModel.TuitionRequest{}).
		Joins("JOIN parents ON parents.id = tuition_requests.parent_id").
		Where("tuition_requests.uuid = ?", requestUUID).
		Where("tuition_requests."+ownerColumn+" = ?", ownerID).
		Where("tuition_requests.is_rejected_by_tutor = FALSE AND tuition_requests.is_rejected_by_ops = FALSE").
		Where("tuition_requests.notification_created = TRUE").
		Where("parents.is_verified_by_ops = TRUE AND parents.is_suspended_by_ops = FALSE AND parents.is_deleted = FALSE")
}

// lockOwnedRequest — ambil & kunci job milik aktor untuk satu transisi.
func lockOwnedRequest(tx *gorm.DB, dest *trModel.TuitionRequest, requestUUID uuid.UUID, ownerColumn string, ownerID uint) error {
	return ownedRequestQuery(tx, requestUUID, ownerColumn, ownerID).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "tuition_requests"}}).
		First(dest).Error
}
