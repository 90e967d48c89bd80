package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yoda_backend/internals/constants"
)

func TestNextStatusOnAccept(t *testing.T) {
	next, err := NextStatusOnAccept(constants.StatusDirectRequest)
	assert.NoError(t, err)
	assert.Equal(t, constants.StatusInProcess, next)

	for _, current := range []string{
		constants.StatusHotJob,
		constants.StatusInProcess,
		constants.StatusWaitingForParent,
		constants.StatusWaitingForTutor,
		constants.StatusConfirmed,
	} {
		_, err := NextStatusOnAccept(current)
		assert.ErrorIs(t, err, ErrNotEligible, current)
	}
}

func TestNextStatusOnApply(t *testing.T) {
	next, err := NextStatusOnApply(constants.StatusHotJob)
	assert.NoError(t, err)
	assert.Equal(t, constants.StatusInProcess, next)

	_, err = NextStatusOnApply(constants.StatusDirectRequest)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestConfirmTutorFirst(t *testing.T) {
	next, confirmed, err := NextStatusOnConfirm(constants.StatusInProcess, ActorTutor)
	assert.NoError(t, err)
	assert.False(t, confirmed)
	assert.Equal(t, constants.StatusWaitingForParent, next)

	next, confirmed, err = NextStatusOnConfirm(next, ActorParent)
	assert.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, constants.StatusConfirmed, next)
}

func TestConfirmParentFirst(t *testing.T) {
	next, confirmed, err := NextStatusOnConfirm(constants.StatusInProcess, ActorParent)
	assert.NoError(t, err)
	assert.False(t, confirmed)
	assert.Equal(t, constants.StatusWaitingForTutor, next)

	next, confirmed, err = NextStatusOnConfirm(next, ActorTutor)
	assert.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, constants.StatusConfirmed, next)
}

func TestConfirmSamePartyTwice(t *testing.T) {
	// pihak yang sama tidak bisa menutup konfirmasinya sendiri
	_, _, err := NextStatusOnConfirm(constants.StatusWaitingForParent, ActorTutor)
	assert.ErrorIs(t, err, ErrNotEligible)

	_, _, err = NextStatusOnConfirm(constants.StatusWaitingForTutor, ActorParent)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestConfirmFromInvalidStates(t *testing.T) {
	for _, current := range []string{
		constants.StatusDirectRequest,
		constants.StatusHotJob,
		constants.StatusConfirmed,
	} {
		_, _, err := NextStatusOnConfirm(current, ActorTutor)
		assert.ErrorIs(t, err, ErrNotEligible, current)
		_, _, err = NextStatusOnConfirm(current, ActorParent)
		assert.ErrorIs(t, err, ErrNotEligible, current)
	}

	_, _, err := NextStatusOnConfirm(constants.StatusInProcess, "ops")
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestCanTutorReject(t *testing.T) {
	// Boleh mundur dari semua status kecuali confirmed.
	assert.True(t, CanTutorReject(constants.StatusDirectRequest))
	assert.True(t, CanTutorReject(constants.StatusHotJob))
	assert.True(t, CanTutorReject(constants.StatusInProcess))
	assert.True(t, CanTutorReject(constants.StatusWaitingForParent))
	assert.True(t, CanTutorReject(constants.StatusWaitingForTutor))
	assert.False(t, CanTutorReject(constants.StatusConfirmed))
}
