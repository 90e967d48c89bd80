package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yoda_backend/internals/constants"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
)

func TestComputeJobsLeftBasic(t *testing.T) {
	jl := ComputeJobsLeft(constants.AccountTypeBasic, QuotaCounts{})
	assert.Equal(t, 1, jl.DailyDirectRequests)
	assert.Equal(t, 0, jl.DailyHotJobs)
	assert.Equal(t, 5, jl.MonthlyDirectRequests)
	assert.Equal(t, 0, jl.MonthlyHotJobs)
}

func TestComputeJobsLeftPremium(t *testing.T) {
	jl := ComputeJobsLeft(constants.AccountTypePremium, QuotaCounts{})
	assert.Equal(t, 3, jl.DailyDirectRequests)
	assert.Equal(t, 5, jl.DailyHotJobs)
	assert.Equal(t, 5, jl.MonthlyDirectRequests)
	assert.Equal(t, 10, jl.MonthlyHotJobs)
}

func TestComputeJobsLeftSubtractsUsage(t *testing.T) {
	jl := ComputeJobsLeft(constants.AccountTypePremium, QuotaCounts{
		DailyDirect:   2,
		DailyHot:      1,
		MonthlyDirect: 4,
		MonthlyHot:    10,
	})
	assert.Equal(t, 1, jl.DailyDirectRequests)
	assert.Equal(t, 4, jl.DailyHotJobs)
	assert.Equal(t, 1, jl.MonthlyDirectRequests)
	assert.Equal(t, 0, jl.MonthlyHotJobs)
}

func TestComputeJobsLeftFloorsAtZero(t *testing.T) {
	// pemakaian bisa melebihi limit kalau paket turun dari premium ke basic
	jl := ComputeJobsLeft(constants.AccountTypeBasic, QuotaCounts{
		DailyDirect:   3,
		MonthlyDirect: 9,
	})
	assert.Equal(t, 0, jl.DailyDirectRequests)
	assert.Equal(t, 0, jl.MonthlyDirectRequests)
}

func TestComputeJobsLeftUnknownAccountTypeFallsBackToBasic(t *testing.T) {
	assert.Equal(t,
		ComputeJobsLeft(constants.AccountTypeBasic, QuotaCounts{}),
		ComputeJobsLeft("whatever", QuotaCounts{}),
	)
}

func TestRemaining(t *testing.T) {
	jl := JobsLeft{
		DailyDirectRequests:   1,
		DailyHotJobs:          2,
		MonthlyDirectRequests: 3,
		MonthlyHotJobs:        4,
	}

	daily, monthly := jl.Remaining(trModel.CounterKindDirect)
	assert.Equal(t, 1, daily)
	assert.Equal(t, 3, monthly)

	daily, monthly = jl.Remaining(trModel.CounterKindHot)
	assert.Equal(t, 2, daily)
	assert.Equal(t, 4, monthly)
}

func TestTutorQuotaLockQueryLocksTutorRow(t *testing.T) {
	// Gate harus serialisasi lewat baris tutors (selalu ada), bukan baris
	// counter yang di awal periode belum ada sama sekali.
	var id uint
	tx := tutorQuotaLockQuery(dryRunDB(t), 7).Take(&id)

	q := tx.Statement.SQL.String()
	assert.Contains(t, q, "tutors")
	assert.Contains(t, q, "FOR UPDATE")
}
