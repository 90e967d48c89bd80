package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetOTPAndValidate(t *testing.T) {
	var u UserCommon
	otp := u.SetOTP()

	assert.Len(t, otp, 5)
	assert.NotNil(t, u.OTP)
	assert.NotNil(t, u.OTPSetAt)

	now := time.Now().UTC()
	assert.True(t, u.OTPValid(otp, now))
	assert.False(t, u.OTPValid("00000", now))
	assert.False(t, u.OTPValid("", now))
}

func TestOTPExpires(t *testing.T) {
	var u UserCommon
	otp := u.SetOTP()

	assert.True(t, u.OTPValid(otp, u.OTPSetAt.Add(9*time.Minute)))
	assert.False(t, u.OTPValid(otp, u.OTPSetAt.Add(11*time.Minute)))
}

func TestOTPValidWithoutOTP(t *testing.T) {
	var u UserCommon
	assert.False(t, u.OTPValid("12345", time.Now().UTC()))
}

func TestActiveDailyUpdates(t *testing.T) {
	var u UserCommon
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	updates := u.ActiveDailyUpdates(now)
	assert.NotNil(t, updates)
	assert.Equal(t, now, updates["last_active_at"])

	// hari yang sama → tidak perlu save lagi
	assert.Nil(t, u.ActiveDailyUpdates(now.Add(6*time.Hour)))

	// hari berikutnya → bump lagi
	assert.NotNil(t, u.ActiveDailyUpdates(now.Add(24*time.Hour)))
}
