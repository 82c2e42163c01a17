package clinic

import (
	"golang.org/x/crypto/bcrypt"

	"klinik-backend/internal/models"
)

// Seed data demo, dipakai saat store masih kosong (first run).
// Isinya meniru data hard-coded sistem aslinya: satu akun per role
// plus beberapa pasien dengan rekam medis dan lab report.

// hash bcrypt cost minimum, cukup untuk akun demo
func seedHash(password string) string {
	raw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(raw)
}

func seedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Admin Utama", Role: models.RoleAdmin, Status: models.UserActive, Contact: "0811-000-0001", Email: "admin@klinik.test"},
		{ID: 2, Name: "Dr. Patel", Role: models.RoleDoctor, Status: models.UserActive, Contact: "0811-000-0002", Email: "dr.patel@klinik.test"},
		{ID: 3, Name: "Dr. Sari", Role: models.RoleDoctor, Status: models.UserActive, Contact: "0811-000-0003", Email: "dr.sari@klinik.test"},
		{ID: 4, Name: "Alice Tan", Role: models.RolePatient, Status: models.UserActive, Contact: "0812-000-0004", Email: "alice@mail.test"},
		{ID: 5, Name: "Budi Santoso", Role: models.RolePatient, Status: models.UserActive, Contact: "0812-000-0005", Email: "budi@mail.test"},
		{ID: 6, Name: "Rina Apoteker", Role: models.RolePharmacist, Status: models.UserActive, Contact: "0813-000-0006", Email: "rina@klinik.test"},
	}
}

// Tabel kredensial statis per user (sumber autentikasi nomor 1)
func seedCredentials() []Credential {
	return []Credential{
		{Name: "Admin Utama", Email: "admin@klinik.test", Role: models.RoleAdmin, Hash: seedHash("admin123")},
		{Name: "Dr. Patel", Email: "dr.patel@klinik.test", Role: models.RoleDoctor, Hash: seedHash("dokter123")},
		{Name: "Dr. Sari", Email: "dr.sari@klinik.test", Role: models.RoleDoctor, Hash: seedHash("dokter123")},
		{Name: "Alice Tan", Email: "alice@mail.test", Role: models.RolePatient, Hash: seedHash("pasien123")},
		{Name: "Budi Santoso", Email: "budi@mail.test", Role: models.RolePatient, Hash: seedHash("pasien123")},
		{Name: "Rina Apoteker", Email: "rina@klinik.test", Role: models.RolePharmacist, Hash: seedHash("apotek123")},
	}
}

// Tabel legacy: satu akun generik per role (sumber autentikasi nomor 2).
// Masih dipertahankan karena dipakai tim QA lama.
func legacyCredentials() []Credential {
	return []Credential{
		{Name: "Admin Utama", Email: "admin@klinik.local", Role: models.RoleAdmin, Hash: seedHash("admin")},
		{Name: "Dr. Patel", Email: "doctor@klinik.local", Role: models.RoleDoctor, Hash: seedHash("doctor")},
		{Name: "Alice Tan", Email: "patient@klinik.local", Role: models.RolePatient, Hash: seedHash("patient")},
		{Name: "Rina Apoteker", Email: "pharmacist@klinik.local", Role: models.RolePharmacist, Hash: seedHash("pharmacist")},
	}
}

func seedRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{Patient: "Alice Tan", Age: 34, BloodType: "O+", Allergies: "Penisilin", Conditions: "Hipertensi ringan", LastVisit: "2026-01-12"},
		{Patient: "Budi Santoso", Age: 41, BloodType: "A-", Allergies: "-", Conditions: "Diabetes tipe 2", LastVisit: "2026-02-03"},
	}
}

func seedLabReports() []models.LabReport {
	return []models.LabReport{
		{ID: 1, Patient: "Alice Tan", Test: "Darah Lengkap", Date: "2026-01-12", Result: "Normal", Status: "Selesai"},
		{ID: 2, Patient: "Budi Santoso", Test: "HbA1c", Date: "2026-02-03", Result: "7.2%", Status: "Selesai"},
		{ID: 3, Patient: "Budi Santoso", Test: "Gula Darah Puasa", Date: "2026-02-03", Result: "132 mg/dL", Status: "Selesai"},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID: 1, Patient: "Budi Santoso", Doctor: "Dr. Sari",
			Date: "2026-02-20", Time: "10:00", Reason: "Kontrol gula darah",
			Status: models.AppointmentApproved, MeetingLink: "https://meet.klinik.test/Budi-1",
		},
	}
}

func seedPrescriptions() []models.Prescription {
	return []models.Prescription{
		{
			ID: "RX-SEED0001", Patient: "Budi Santoso", PatientAge: 41, PatientContact: "0812-000-0005",
			Doctor: "Dr. Sari", Date: "2026-02-03", Diagnosis: "Diabetes tipe 2",
			Medication: "Metformin 500mg", Dosage: "2x1 sesudah makan", Quantity: 60,
			Instructions: "Diminum rutin, jangan putus", Status: models.PrescriptionPending,
			UnitPrice: 0.65, TotalCost: 39.00,
		},
	}
}

func defaultSettings() models.PlatformSettings {
	return models.PlatformSettings{
		Enforce2FA:      false,
		EncryptAtRest:   true,
		RetentionMonths: 24,
	}
}
