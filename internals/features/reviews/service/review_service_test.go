package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunningAverage(t *testing.T) {
	// review pertama: rata-rata = nilai masuk
	assert.InDelta(t, 4.0, runningAverage(0, 0, 4), 1e-9)

	// 4.0 dari 2 review + review 5 → 13/3
	assert.InDelta(t, 13.0/3.0, runningAverage(4.0, 2, 5), 1e-9)

	// nilai sama tidak menggeser rata-rata
	assert.InDelta(t, 3.0, runningAverage(3.0, 9, 3), 1e-9)
}

func TestRunningAverageSequence(t *testing.T) {
	avg := 0.0
	ratings := []int{5, 3, 4, 4, 2}
	for i, r := range ratings {
		avg = runningAverage(avg, float64(i), r)
	}
	assert.InDelta(t, 18.0/5.0, avg, 1e-9)
}
