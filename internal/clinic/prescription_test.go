package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klinik-backend/internal/models"
)

func validPrescriptionInput() models.CreatePrescriptionInput {
	return models.CreatePrescriptionInput{
		Patient:      "Alice Tan",
		Date:         "2026-03-01",
		Diagnosis:    "Nyeri otot",
		Medication:   "Ibuprofen 400mg",
		Dosage:       "3x1 sesudah makan",
		Quantity:     20,
		Instructions: "Habiskan sesuai dosis",
	}
}

func TestCreatePrescriptionComputesTotalCost(t *testing.T) {
	s := newTestState(t)

	p, warnings, err := s.CreatePrescription("Dr. Patel", validPrescriptionInput())
	require.NoError(t, err)

	assert.Equal(t, models.PrescriptionPending, p.Status)
	assert.Equal(t, "Pending Fulfillment", string(p.Status))
	assert.InDelta(t, 0.80, p.UnitPrice, 0.001)
	assert.InDelta(t, 16.00, p.TotalCost, 0.001)
	assert.Empty(t, warnings)
	assert.NotEmpty(t, p.ID)

	// Data umur & kontak ikut terisi dari rekam medis dan akun pasien
	assert.Equal(t, 34, p.PatientAge)
	assert.Equal(t, "0812-000-0004", p.PatientContact)
}

func TestTotalCostNeverRecomputed(t *testing.T) {
	s := newTestState(t)

	p, _, err := s.CreatePrescription("Dr. Patel", validPrescriptionInput())
	require.NoError(t, err)
	costAtCreation := p.TotalCost

	// Dispense tidak boleh menyentuh TotalCost
	p, err = s.DispensePrescription(p.ID, "Counseled on dosage")
	require.NoError(t, err)
	assert.Equal(t, costAtCreation, p.TotalCost)
}

func TestCreatePrescriptionRejectsUnknownMedication(t *testing.T) {
	s := newTestState(t)
	before := len(s.prescriptions)

	in := validPrescriptionInput()
	in.Medication = "Obat Ajaib 9000mg"
	_, _, err := s.CreatePrescription("Dr. Patel", in)

	assert.ErrorIs(t, err, ErrUnknownMedication)
	assert.Len(t, s.prescriptions, before)
}

func TestCreatePrescriptionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreatePrescriptionInput)
	}{
		{"medication kosong", func(in *models.CreatePrescriptionInput) { in.Medication = " " }},
		{"dosage kosong", func(in *models.CreatePrescriptionInput) { in.Dosage = "" }},
		{"instructions kosong", func(in *models.CreatePrescriptionInput) { in.Instructions = "" }},
		{"quantity nol", func(in *models.CreatePrescriptionInput) { in.Quantity = 0 }},
		{"quantity negatif", func(in *models.CreatePrescriptionInput) { in.Quantity = -3 }},
		{"patient kosong", func(in *models.CreatePrescriptionInput) { in.Patient = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(t)
			in := validPrescriptionInput()
			tc.mutate(&in)

			_, _, err := s.CreatePrescription("Dr. Patel", in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDispensePrescription(t *testing.T) {
	s := newTestState(t)

	p, _, err := s.CreatePrescription("Dr. Patel", validPrescriptionInput())
	require.NoError(t, err)

	p, err = s.DispensePrescription(p.ID, "Counseled on dosage")
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionDispensed, p.Status)
	assert.Equal(t, "Counseled on dosage", p.PharmacistNote)

	// Dispensed itu final
	_, err = s.DispensePrescription(p.ID, "lagi")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDispenseUnknownIDFails(t *testing.T) {
	s := newTestState(t)
	_, err := s.DispensePrescription("RX-TIDAKADA", "note")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInteractionWarnings(t *testing.T) {
	s := newTestState(t)

	in := validPrescriptionInput()
	in.Medication = "Aspirin 80mg"
	_, warnings, err := s.CreatePrescription("Dr. Patel", in)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Warfarin di atas aspirin untuk pasien yang sama harus kena warning
	in = validPrescriptionInput()
	in.Medication = "Warfarin 5mg"
	_, warnings, err = s.CreatePrescription("Dr. Patel", in)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "perdarahan")

	// Pasien lain tidak ikut kena
	in = validPrescriptionInput()
	in.Patient = "Budi Santoso"
	in.Medication = "Warfarin 5mg"
	_, warnings, err = s.CreatePrescription("Dr. Patel", in)
	require.NoError(t, err)
	// Budi punya seed Metformin, tidak ada interaksi dengan warfarin di tabel
	assert.Empty(t, warnings)
}

// Broadcast resep baru cuma menarget apoteker yang punya token device.
func TestPharmacistBroadcastTargets(t *testing.T) {
	s := newTestState(t)

	// Belum ada apoteker yang daftar push notification
	assert.Empty(t, s.pharmacistTokens())

	s.SetFCMToken("Rina Apoteker", "token-rina")
	s.SetFCMToken("Alice Tan", "token-alice") // pasien, harus diabaikan

	assert.Equal(t, []string{"token-rina"}, s.pharmacistTokens())
}
