package clinic

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"klinik-backend/internal/metrics"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// Daftar harga obat statis (harga satuan). Obat di luar daftar ini
// TIDAK BISA diresepkan — lihat ErrUnknownMedication.
var medicationPrices = map[string]float64{
	"Paracetamol 500mg": 0.50,
	"Ibuprofen 400mg":   0.80,
	"Amoxicillin 500mg": 1.20,
	"Metformin 500mg":   0.65,
	"Amlodipine 5mg":    0.90,
	"Omeprazole 20mg":   1.10,
	"Cetirizine 10mg":   0.40,
	"Simvastatin 20mg":  0.95,
	"Warfarin 5mg":      1.50,
	"Aspirin 80mg":      0.30,
}

// MedicationPrice mengembalikan harga satuan obat dan apakah obatnya dikenal
func MedicationPrice(medication string) (float64, bool) {
	price, ok := medicationPrices[medication]
	return price, ok
}

// Pasangan obat yang interaksinya perlu diwaspadai. Tabel kecil dan
// statis — ini cuma peringatan untuk dokter, bukan larangan keras.
var drugInteractions = []struct {
	A, B    string
	Warning string
}{
	{"Warfarin 5mg", "Aspirin 80mg", "Risiko perdarahan meningkat"},
	{"Warfarin 5mg", "Ibuprofen 400mg", "NSAID meningkatkan efek antikoagulan"},
	{"Simvastatin 20mg", "Amlodipine 5mg", "Risiko miopati, pertimbangkan dosis statin lebih rendah"},
}

// CreatePrescription dibuat dokter. TotalCost dihitung SEKALI di sini:
// unitPrice x quantity, dibulatkan 2 desimal, dan tidak pernah dihitung
// ulang setelahnya. Balikin juga daftar warning interaksi obat terhadap
// resep pasien yang sudah ada.
func (s *State) CreatePrescription(doctor string, in models.CreatePrescriptionInput) (models.Prescription, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Medication) == "" ||
		strings.TrimSpace(in.Dosage) == "" ||
		strings.TrimSpace(in.Instructions) == "" ||
		strings.TrimSpace(in.Patient) == "" {
		return models.Prescription{}, nil, ErrValidation
	}
	if in.Quantity <= 0 {
		return models.Prescription{}, nil, ErrValidation
	}

	unitPrice, known := medicationPrices[in.Medication]
	if !known {
		return models.Prescription{}, nil, ErrUnknownMedication
	}

	total := math.Round(unitPrice*float64(in.Quantity)*100) / 100

	// Data umur & kontak diambil dari rekam medis dan akun pasien
	age := 0
	if rec := s.findRecord(in.Patient); rec != nil {
		age = rec.Age
	}
	contact := ""
	if u := s.findUserByName(in.Patient); u != nil {
		contact = u.Contact
	}

	p := models.Prescription{
		ID:             "RX-" + strings.ToUpper(uuid.NewString()[:8]),
		Patient:        in.Patient,
		PatientAge:     age,
		PatientContact: contact,
		Doctor:         doctor,
		Date:           in.Date,
		Diagnosis:      in.Diagnosis,
		Medication:     in.Medication,
		Dosage:         in.Dosage,
		Quantity:       in.Quantity,
		Instructions:   in.Instructions,
		Status:         models.PrescriptionPending,
		UnitPrice:      unitPrice,
		TotalCost:      total,
	}

	warnings := s.interactionWarnings(in.Patient, in.Medication)

	s.prescriptions = append(s.prescriptions, p)
	s.persistPrescriptions()
	metrics.Transitions.WithLabelValues("prescription", string(models.PrescriptionPending)).Inc()

	s.notifyPharmacists("Resep baru masuk",
		fmt.Sprintf("%s meresepkan %s untuk %s", doctor, p.Medication, p.Patient),
		map[string]string{"prescription_id": p.ID})

	return p, warnings, nil
}

// pharmacistTokens kumpulkan token device semua apoteker yang sudah
// daftar push notification.
func (s *State) pharmacistTokens() []string {
	var tokens []string
	for i := range s.users {
		u := &s.users[i]
		if u.Role == models.RolePharmacist && u.FCMToken != "" {
			tokens = append(tokens, u.FCMToken)
		}
	}
	return tokens
}

// notifyPharmacists broadcast ke semua apoteker, pola fire-and-forget
// sama seperti notifyPatient.
func (s *State) notifyPharmacists(title, body string, data map[string]string) {
	for _, token := range s.pharmacistTokens() {
		go utils.SendNotification(token, title, body, data)
	}
}

// interactionWarnings cek obat baru terhadap semua resep pasien yg sudah ada
func (s *State) interactionWarnings(patient, medication string) []string {
	var warnings []string
	for _, existing := range s.prescriptions {
		if existing.Patient != patient {
			continue
		}
		for _, pair := range drugInteractions {
			if (pair.A == medication && pair.B == existing.Medication) ||
				(pair.B == medication && pair.A == existing.Medication) {
				warnings = append(warnings,
					fmt.Sprintf("%s + %s: %s", medication, existing.Medication, pair.Warning))
			}
		}
	}
	return warnings
}

// DispensePrescription: Pending Fulfillment -> Dispensed (final),
// oleh apoteker, sambil menempelkan catatan apoteker.
func (s *State) DispensePrescription(id, note string) (models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPrescription(id)
	if p == nil {
		return models.Prescription{}, ErrNotFound
	}
	if p.Status != models.PrescriptionPending {
		return models.Prescription{}, ErrInvalidTransition
	}

	p.Status = models.PrescriptionDispensed
	p.PharmacistNote = note
	s.persistPrescriptions()
	metrics.Transitions.WithLabelValues("prescription", string(models.PrescriptionDispensed)).Inc()

	s.notifyPatient(p.Patient,
		"Obat Siap Diambil",
		fmt.Sprintf("Resep %s (%s) sudah disiapkan apotek.", p.ID, p.Medication),
		map[string]string{"prescription_id": p.ID, "type": "prescription_dispensed"},
	)

	return *p, nil
}
