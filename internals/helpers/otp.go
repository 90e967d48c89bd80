package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP menghasilkan kode numerik acak dengan panjang `digits`.
func GenerateOTP(digits int) string {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand hampir mustahil gagal; fallback kode statis lebih
		// buruk daripada panic saat boot test
		panic(err)
	}
	return fmt.Sprintf("%0*d", digits, n)
}
