package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp := GenerateOTP(5)
		assert.Len(t, otp, 5)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', otp)
		}
	}
}
