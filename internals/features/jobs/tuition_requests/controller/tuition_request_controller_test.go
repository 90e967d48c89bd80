package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yoda_backend/internals/constants"
)

func TestExpandStatuses(t *testing.T) {
	assert.Equal(t, []string{constants.StatusDirectRequest}, expandStatuses("direct-request"))
	assert.Equal(t, []string{constants.StatusHotJob}, expandStatuses("hot-job"))
	assert.Equal(t, []string{constants.StatusConfirmed}, expandStatuses("confirmed"))

	// in-process mencakup kedua status waiting
	assert.Equal(t, []string{
		constants.StatusInProcess,
		constants.StatusWaitingForParent,
		constants.StatusWaitingForTutor,
	}, expandStatuses("in-process"))

	// status waiting tidak bisa diminta langsung
	assert.Nil(t, expandStatuses(constants.StatusWaitingForParent))
	assert.Nil(t, expandStatuses(constants.StatusWaitingForTutor))
	assert.Nil(t, expandStatuses("rejected"))
	assert.Nil(t, expandStatuses(""))
}
