// file: internals/features/jobs/tuition_requests/service/quota_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoda_backend/internals/constants"
	trModel "yoda_backend/internals/features/jobs/tuition_requests/model"
)

// ErrQuotaExceeded — kuota harian/bulanan habis. Dikembalikan sebelum ada
// state yang berubah.
var ErrQuotaExceeded = errors.New("jobs limit reached")

// JobsLeft — sisa kuota tutor untuk hari & bulan berjalan.
type JobsLeft struct {
	DailyDirectRequests   int `json:"daily_direct_requests"`
	DailyHotJobs          int `json:"daily_hot_jobs"`
	MonthlyDirectRequests int `json:"monthly_direct_requests"`
	MonthlyHotJobs        int `json:"monthly_hot_jobs"`
}

// QuotaCounts — jumlah terpakai per metrik.
type QuotaCounts struct {
	DailyDirect   int
	DailyHot      int
	MonthlyDirect int
	MonthlyHot    int
}

// ComputeJobsLeft — limit paket dikurangi pemakaian, floor di nol. Pure,
// supaya gampang dites tanpa DB.
func ComputeJobsLeft(accountType string, counts QuotaCounts) JobsLeft {
	limits, ok := constants.JobsLimit[accountType]
	if !ok {
		limits = constants.JobsLimit[constants.AccountTypeBasic]
	}
	return JobsLeft{
		DailyDirectRequests:   positiveOrZero(limits["daily_direct_requests"] - counts.DailyDirect),
		DailyHotJobs:          positiveOrZero(limits["daily_hot_jobs"] - counts.DailyHot),
		MonthlyDirectRequests: positiveOrZero(limits["monthly_direct_requests"] - counts.MonthlyDirect),
		MonthlyHotJobs:        positiveOrZero(limits["monthly_hot_jobs"] - counts.MonthlyHot),
	}
}

func positiveOrZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Remaining untuk satu kind saja (dipakai gate accept/apply).
func (jl JobsLeft) Remaining(kind string) (daily, monthly int) {
	if kind == trModel.CounterKindHot {
		return jl.DailyHotJobs, jl.MonthlyHotJobs
	}
	return jl.DailyDirectRequests, jl.MonthlyDirectRequests
}

// LoadQuotaCounts membaca counter periode berjalan. Dipanggil dengan tx
// yang sudah mengunci baris (lihat lockCounterRows) saat dipakai sebagai
// gate, atau dengan db biasa untuk tampilan profil.
func LoadQuotaCounts(db *gorm.DB, tutorID uint, now time.Time) (QuotaCounts, error) {
	var rows []trModel.TutorJobCounter
	if err := db.
		Where("tutor_id = ?", tutorID).
		Where(
			"(period = ? AND period_key = ?) OR (period = ? AND period_key = ?)",
			trModel.PeriodDaily, trModel.DailyKey(now),
			trModel.PeriodMonthly, trModel.MonthlyKey(now),
		).
		Find(&rows).Error; err != nil {
		return QuotaCounts{}, err
	}

	var counts QuotaCounts
	for _, r := range rows {
		switch {
		case r.Period == trModel.PeriodDaily && r.Kind == trModel.CounterKindDirect:
			counts.DailyDirect = r.Count
		case r.Period == trModel.PeriodDaily && r.Kind == trModel.CounterKindHot:
			counts.DailyHot = r.Count
		case r.Period == trModel.PeriodMonthly && r.Kind == trModel.CounterKindDirect:
			counts.MonthlyDirect = r.Count
		case r.Period == trModel.PeriodMonthly && r.Kind == trModel.CounterKindHot:
			counts.MonthlyHot = r.Count
		}
	}
	return counts, nil
}

// GetJobsLeft — untuk serializer detail tutor.
func GetJobsLeft(db *gorm.DB, tutorID uint, accountType string, now time.Time) (JobsLeft, error) {
	counts, err := LoadQuotaCounts(db, tutorID, now)
	if err != nil {
		return JobsLeft{}, err
	}
	return ComputeJobsLeft(accountType, counts), nil
}

// tutorQuotaLockQuery — serialisasi gate kuota lewat baris tutor, bukan
// baris counter: di awal hari/bulan counter belum ada sama sekali, jadi
// FOR UPDATE atas counter tidak mengunci apa-apa dan dua accept
// bersamaan bisa sama-sama lolos gate.
func tutorQuotaLockQuery(tx *gorm.DB, tutorID uint) *gorm.DB {
	return tx.
		Table("tutors").
		Select("id").
		Where("id = ?", tutorID).
		Clauses(clause.Locking{Strength: "UPDATE"})
}

// gateAndRecordAcceptance — jalankan DI DALAM transaksi. Mengunci baris
// tutor (FOR UPDATE) supaya dua accept bersamaan tidak dua-duanya lolos
// gate, lalu increment daily+monthly secara atomik via upsert.
func gateAndRecordAcceptance(tx *gorm.DB, tutorID uint, accountType, kind string, now time.Time) error {
	// Request kedua menunggu di sini sampai yang pertama commit.
	var lockedID uint
	if err := tutorQuotaLockQuery(tx, tutorID).Take(&lockedID).Error; err != nil {
		return err
	}

	counts, err := LoadQuotaCounts(tx, tutorID, now)
	if err != nil {
		return err
	}
	daily, monthly := ComputeJobsLeft(accountType, counts).Remaining(kind)
	if daily <= 0 || monthly <= 0 {
		return ErrQuotaExceeded
	}

	for _, row := range []trModel.TutorJobCounter{
		{TutorID: tutorID, Kind: kind, Period: trModel.PeriodDaily, PeriodKey: trModel.DailyKey(now), Count: 1},
		{TutorID: tutorID, Kind: kind, Period: trModel.PeriodMonthly, PeriodKey: trModel.MonthlyKey(now), Count: 1},
	} {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "tutor_id"}, {Name: "kind"}, {Name: "period"}, {Name: "period_key"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("tutor_job_counters.count + 1"),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
