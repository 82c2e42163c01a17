package clinic

import "klinik-backend/internal/models"

// Query layer: menyaring koleksi global jadi subset yang boleh dilihat
// role/identitas pemanggil. Semua fungsi balikin COPY slice dengan
// urutan insertion asli — tidak pernah di-reorder saat dibaca.

// AppointmentsFor: dokter cuma lihat appointment yang ditujukan ke dia,
// pasien cuma lihat miliknya sendiri, admin lihat semua.
func (s *State) AppointmentsFor(id Identity) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		switch id.Role {
		case models.RoleDoctor:
			if a.Doctor != id.Name {
				continue
			}
		case models.RolePatient:
			if a.Patient != id.Name {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// RecordsFor: pasien cuma rekam medisnya sendiri, dokter & admin semua
func (s *State) RecordsFor(id Identity) []models.MedicalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MedicalRecord, 0)
	for _, r := range s.records {
		if id.Role == models.RolePatient && r.Patient != id.Name {
			continue
		}
		out = append(out, r)
	}
	return out
}

// LabReportsFor: aturan sama dengan rekam medis
func (s *State) LabReportsFor(id Identity) []models.LabReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LabReport, 0)
	for _, l := range s.labReports {
		if id.Role == models.RolePatient && l.Patient != id.Name {
			continue
		}
		out = append(out, l)
	}
	return out
}

// PrescriptionsFor: apoteker dan admin akses penuh, dokter lihat resep
// yang dia tulis, pasien lihat resep atas namanya.
func (s *State) PrescriptionsFor(id Identity) []models.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Prescription, 0)
	for _, p := range s.prescriptions {
		switch id.Role {
		case models.RoleDoctor:
			if p.Doctor != id.Name {
				continue
			}
		case models.RolePatient:
			if p.Patient != id.Name {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// UsersFor: cuma admin yang boleh lihat daftar user (tanpa hash password)
func (s *State) UsersFor(id Identity) []models.User {
	if id.Role != models.RoleAdmin {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.WithoutPassword())
	}
	return out
}

// UserByName lookup satu user (untuk profile), tanpa data sensitif
func (s *State) UserByName(name string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findUserByName(name); u != nil {
		return u.WithoutPassword(), true
	}
	return models.User{}, false
}

// PrescriptionByID untuk detail/invoice. Balikin copy.
func (s *State) PrescriptionByID(id string) (models.Prescription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findPrescription(id); p != nil {
		return *p, true
	}
	return models.Prescription{}, false
}

// DashboardStats: ringkasan angka untuk dashboard admin
func (s *State) DashboardStats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]int{
		"total_users":           len(s.users),
		"pending_users":         0,
		"appointments_pending":  0,
		"appointments_approved": 0,
		"appointments_done":     0,
		"prescriptions_waiting": 0,
	}

	for _, u := range s.users {
		if u.Status == models.UserPending {
			stats["pending_users"]++
		}
	}
	for _, a := range s.appointments {
		switch a.Status {
		case models.AppointmentPending:
			stats["appointments_pending"]++
		case models.AppointmentApproved:
			stats["appointments_approved"]++
		case models.AppointmentCompleted:
			stats["appointments_done"]++
		}
	}
	for _, p := range s.prescriptions {
		if p.Status == models.PrescriptionPending {
			stats["prescriptions_waiting"]++
		}
	}
	return stats
}
