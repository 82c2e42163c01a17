package models

// Alur status resep: Pending Fulfillment --dispense--> Dispensed (final)
type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "Pending Fulfillment"
	PrescriptionDispensed PrescriptionStatus = "Dispensed"
)

func (s PrescriptionStatus) IsValid() bool {
	return s == PrescriptionPending || s == PrescriptionDispensed
}

// Prescription dibuat dokter, diproses apoteker.
// TotalCost dihitung SEKALI saat pembuatan (unitPrice x quantity) dan
// tidak pernah dihitung ulang — perubahan quantity setelah dibuat
// memang tidak didukung.
type Prescription struct {
	ID             string             `json:"id"`
	Patient        string             `json:"patient"`
	PatientAge     int                `json:"patientAge"`
	PatientContact string             `json:"patientContact"`
	Doctor         string             `json:"doctor"`
	Date           string             `json:"date"` // Format YYYY-MM-DD
	Diagnosis      string             `json:"diagnosis"`
	Medication     string             `json:"medication"`
	Dosage         string             `json:"dosage"`
	Quantity       int                `json:"quantity"`
	Instructions   string             `json:"instructions"`
	Status         PrescriptionStatus `json:"status"`
	PharmacistNote string             `json:"pharmacistNote"`
	UnitPrice      float64            `json:"unitPrice"`
	TotalCost      float64            `json:"totalCost"`
}

// Input pembuatan resep dari dokter
type CreatePrescriptionInput struct {
	Patient      string `json:"patient" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Diagnosis    string `json:"diagnosis"`
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	Instructions string `json:"instructions" binding:"required"`
}

// Input saat apoteker menyerahkan obat
type DispenseInput struct {
	Note string `json:"note"`
}
