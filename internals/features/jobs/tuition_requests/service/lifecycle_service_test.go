package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
)

// dryRunDB — gorm dalam mode DryRun: SQL dibangun tapi tidak pernah
// dieksekusi, jadi bisa dipakai memeriksa predikat query tanpa server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=yoda dbname=yoda"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return db
}

func TestTutorResponseNotificationsNotifyBothParties(t *testing.T) {
	req := &trModel.TuitionRequest{ParentID: 11, TutorID: 22}

	direct := tutorResponseNotifications(trModel.CounterKindDirect, "Rahim Uddin", req)
	assert.Len(t, direct, 2)
	assert.Equal(t, uint(11), *direct[0].ParentID)
	assert.Equal(t, constants.NotificationRequestAccepted, direct[0].NotificationType)
	assert.True(t, direct[0].SendExternally)
	assert.Equal(t, uint(22), *direct[1].TutorID)
	assert.False(t, direct[1].SendExternally)

	hot := tutorResponseNotifications(trModel.CounterKindHot, "Rahim Uddin", req)
	assert.Len(t, hot, 2)
	assert.Equal(t, constants.NotificationHotJobApplied, hot[0].NotificationType)
	assert.Contains(t, hot[0].Body, "applied")
	assert.Equal(t, uint(22), *hot[1].TutorID)
}

func TestFirstConfirmNotificationsNotifyBothParties(t *testing.T) {
	req := &trModel.TuitionRequest{ParentID: 11, TutorID: 22}

	byTutor := firstConfirmNotifications(ActorTutor, "Rahim Uddin", req)
	assert.Len(t, byTutor, 2)
	// pihak lain diberi tahu gilirannya, lewat SMS/push juga
	assert.Equal(t, uint(11), *byTutor[0].ParentID)
	assert.Equal(t, constants.NotificationTutorConfirmed, byTutor[0].NotificationType)
	assert.True(t, byTutor[0].SendExternally)
	// yang konfirmasi dapat catatan in-app
	assert.Equal(t, uint(22), *byTutor[1].TutorID)
	assert.False(t, byTutor[1].SendExternally)

	byParent := firstConfirmNotifications(ActorParent, "Karim Ahmed", req)
	assert.Len(t, byParent, 2)
	assert.Equal(t, uint(22), *byParent[0].TutorID)
	assert.Equal(t, constants.NotificationParentConfirmed, byParent[0].NotificationType)
	assert.Equal(t, uint(11), *byParent[1].ParentID)
}

func TestOwnedRequestQueryChecksParentEligibility(t *testing.T) {
	tx := ownedRequestQuery(dryRunDB(t), uuid.New(), "tutor_id", 7).
		Find(&[]trModel.TuitionRequest{})

	q := tx.Statement.SQL.String()
	assert.Contains(t, q, "JOIN parents ON parents.id = tuition_requests.parent_id")
	assert.Contains(t, q, "parents.is_verified_by_ops = TRUE")
	assert.Contains(t, q, "parents.is_suspended_by_ops = FALSE")
	assert.Contains(t, q, "parents.is_deleted = FALSE")
	assert.Contains(t, q, "tuition_requests.notification_created = TRUE")
}
