package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyKey(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), DailyKey(now))

	// timezone lain dinormalisasi ke hari UTC
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	early := time.Date(2026, 9, 1, 3, 0, 0, 0, dhaka) // masih 31 Agustus UTC
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), DailyKey(early))
}

func TestMonthlyKey(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), MonthlyKey(now))
}
