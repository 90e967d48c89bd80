package constants

// JobsLimit per tipe akun. Kuota harian & bulanan untuk direct request dan
// hot job (angka mengikuti paket berjalan, jangan diubah tanpa ops).
var JobsLimit = map[string]map[string]int{
	AccountTypeBasic: {
		"daily_direct_requests":   1,
		"daily_hot_jobs":          0,
		"monthly_direct_requests": 5,
		"monthly_hot_jobs":        0,
	},
	AccountTypePremium: {
		"daily_direct_requests":   3,
		"daily_hot_jobs":          5,
		"monthly_direct_requests": 5,
		"monthly_hot_jobs":        10,
	},
}

// Biaya upgrade premium (poin atau bayar) + durasi yang didapat
const (
	PremiumUpgradePointsCost = 500
	PremiumUpgradePriceBDT   = 1000
	PremiumUpgradeDays       = 30
)

// Jumlah slot jadwal mingguan (7 hari × 3 sesi)
const ScheduleSlots = 21

// OTP
const (
	OTPDigits     = 5
	OTPTTLMinutes = 10
)
