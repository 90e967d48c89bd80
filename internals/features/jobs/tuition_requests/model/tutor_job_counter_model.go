// file: internals/features/jobs/tuition_requests/model/tutor_job_counter_model.go
package model

import "time"

// Jenis pekerjaan yang dihitung kuotanya
const (
	CounterKindDirect = "direct"
	CounterKindHot    = "hot"
)

const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
)

// TutorJobCounter — pengganti dictionary JSON ber-key string tanggal di
// sistem lama: satu baris per (tutor, kind, period, period_key) dengan
// kolom tanggal bertipe date. Increment dilakukan atomik via upsert,
// reset periode implisit karena key periode baru = baris baru.
type TutorJobCounter struct {
	TutorID   uint      `gorm:"primaryKey;autoIncrement:false" json:"tutor_id"`
	Kind      string    `gorm:"primaryKey;type:varchar(10)" json:"kind"`
	Period    string    `gorm:"primaryKey;type:varchar(10)" json:"period"`
	PeriodKey time.Time `gorm:"primaryKey;type:date" json:"period_key"`

	Count int `gorm:"not null;default:0" json:"count"`
}

func (TutorJobCounter) TableName() string { return "tutor_job_counters" }

// DailyKey — awal hari UTC.
func DailyKey(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthlyKey — tanggal 1 bulan berjalan, UTC.
func MonthlyKey(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
