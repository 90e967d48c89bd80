package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	trxModel "yoda_backend/internals/features/transactions/model"
)

func TestApplySettlementRejectsTransactionWithoutTutor(t *testing.T) {
	// Transaksi impor lama bisa tidak punya FK tutor; settlement untuk
	// baris seperti itu harus gagal rapi, bukan panic.
	record := trxModel.Transaction{OrderID: "premium-legacy-1"}

	_, err := applySettlement(nil, &record, "mid-trx-1", time.Now().UTC())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no tutor")
}
