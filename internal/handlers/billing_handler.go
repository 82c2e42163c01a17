package handlers

import (
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"klinik-backend/internal/config"
	"klinik-backend/pkg/utils"
)

// CreatePrescriptionInvoice: apoteker bikin link pembayaran Midtrans
// untuk total biaya resep. Murni artefak tagihan — status resep TIDAK
// berubah di sini (dispense tetap aksi terpisah).
func CreatePrescriptionInvoice(c *gin.Context) {
	id := c.Param("id")

	// 1. Ambil resepnya
	prescription, ok := config.State.PrescriptionByID(id)
	if !ok {
		utils.APIResponse(c, http.StatusNotFound, false, "Resep tidak ditemukan", nil)
		return
	}

	// 2. Init Client Midtrans
	var s snap.Client
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	// 3. Siapkan Request Snap. Semua nominal dalam sen biar item
	// dan gross amount konsisten (Midtrans validasi jumlahnya).
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  prescription.ID,
			GrossAmt: int64(math.Round(prescription.TotalCost * 100)),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: prescription.Patient,
			Phone: prescription.PatientContact,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    prescription.ID,
				Name:  prescription.Medication,
				Price: int64(math.Round(prescription.UnitPrice * 100)),
				Qty:   int32(prescription.Quantity),
			},
		},
	}

	// 4. Minta Token ke Midtrans
	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Midtrans Error", errSnap.GetMessage())
		return
	}

	// 5. Return link pembayaran
	utils.APIResponse(c, http.StatusCreated, true, "Invoice dibuat, silakan bayar", gin.H{
		"prescription_id": prescription.ID,
		"total_cost":      prescription.TotalCost,
		"snap_token":      snapResp.Token,
		"redirect_url":    snapResp.RedirectURL,
	})
}
