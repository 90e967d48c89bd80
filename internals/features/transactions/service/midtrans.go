// file: internals/features/transactions/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	trxModel "yoda_backend/internals/features/transactions/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap untuk satu transaksi; aplikasi
// membuka halaman pembayaran dengan token ini.
func GenerateSnapToken(t trxModel.Transaction, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  t.OrderID,
			GrossAmt: t.TotalAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
