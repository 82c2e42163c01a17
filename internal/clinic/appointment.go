package clinic

import (
	"fmt"
	"strings"

	"klinik-backend/internal/metrics"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// BookAppointment membuat appointment baru atas nama pasien yang login.
// Status awal selalu Pending, id = max(id lama)+1, meeting link dibuat
// dari nama depan pasien + id.
func (s *State) BookAppointment(patient string, in models.BookAppointmentInput) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(patient) == "" || strings.TrimSpace(in.Reason) == "" {
		return models.Appointment{}, ErrValidation
	}
	if strings.TrimSpace(in.Doctor) == "" || in.Date == "" || in.Time == "" {
		return models.Appointment{}, ErrValidation
	}

	id := s.nextAppointmentID()
	firstName := strings.Fields(patient)[0]

	appt := models.Appointment{
		ID:          id,
		Patient:     patient,
		Doctor:      in.Doctor,
		Date:        in.Date,
		Time:        in.Time,
		Reason:      in.Reason,
		Status:      models.AppointmentPending,
		MeetingLink: fmt.Sprintf("https://meet.klinik.test/%s-%d", firstName, id),
	}

	s.appointments = append(s.appointments, appt)
	s.persistAppointments()
	metrics.Transitions.WithLabelValues("appointment", string(models.AppointmentPending)).Inc()

	return appt, nil
}

// ApproveAppointment: Pending -> Approved, hanya oleh dokter yg ditunjuk
func (s *State) ApproveAppointment(doctor string, id int) (models.Appointment, error) {
	return s.decideAppointment(doctor, id, models.AppointmentApproved)
}

// RejectAppointment: Pending -> Rejected (final), hanya oleh dokter yg ditunjuk
func (s *State) RejectAppointment(doctor string, id int) (models.Appointment, error) {
	return s.decideAppointment(doctor, id, models.AppointmentRejected)
}

func (s *State) decideAppointment(doctor string, id int, to models.AppointmentStatus) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findAppointment(id)
	if appt == nil {
		return models.Appointment{}, ErrNotFound
	}
	if appt.Doctor != doctor {
		return models.Appointment{}, ErrForbidden
	}
	if appt.Status != models.AppointmentPending {
		return models.Appointment{}, ErrInvalidTransition
	}

	appt.Status = to
	s.persistAppointments()
	metrics.Transitions.WithLabelValues("appointment", string(to)).Inc()

	s.notifyPatient(appt.Patient,
		"Update Appointment",
		fmt.Sprintf("Appointment tanggal %s dengan %s: %s", appt.Date, appt.Doctor, to),
		map[string]string{"appointment_id": fmt.Sprintf("%d", appt.ID), "type": "appointment_decision"},
	)

	return *appt, nil
}

// CompleteAppointment: Approved -> Completed (final), wajib ada catatan
// konsultasi. Efek samping: catatan di-append ke MedicalRecord pasien
// ("; " + note) dan LastVisit di-set ke tanggal appointment.
// Kalau note kosong/spasi doang atau status bukan Approved: NO-OP total,
// tidak ada state yang berubah.
func (s *State) CompleteAppointment(doctor string, id int, note string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validasi note duluan, sebelum nyentuh apapun
	note = strings.TrimSpace(note)
	if note == "" {
		return models.Appointment{}, ErrValidation
	}

	appt := s.findAppointment(id)
	if appt == nil {
		return models.Appointment{}, ErrNotFound
	}
	if appt.Doctor != doctor {
		return models.Appointment{}, ErrForbidden
	}
	if appt.Status != models.AppointmentApproved {
		return models.Appointment{}, ErrInvalidTransition
	}

	appt.Status = models.AppointmentCompleted
	appt.ConsultationNote = note

	// Append ke rekam medis pasien (record diasumsikan sudah di-seed;
	// kalau tidak ada ya dilewati, appointment tetap Completed)
	if rec := s.findRecord(appt.Patient); rec != nil {
		rec.Conditions = rec.Conditions + "; " + note
		rec.LastVisit = appt.Date
		s.persistRecords()
	}

	s.persistAppointments()
	metrics.Transitions.WithLabelValues("appointment", string(models.AppointmentCompleted)).Inc()

	s.notifyPatient(appt.Patient,
		"Konsultasi Selesai",
		"Catatan konsultasi Anda sudah masuk ke rekam medis.",
		map[string]string{"appointment_id": fmt.Sprintf("%d", appt.ID), "type": "appointment_completed"},
	)

	return *appt, nil
}

// notifyPatient kirim push notification ke device pasien kalau ada
// tokennya. Fire-and-forget pakai goroutine biar tidak blocking.
func (s *State) notifyPatient(name, title, body string, data map[string]string) {
	u := s.findUserByName(name)
	if u == nil || u.FCMToken == "" {
		return
	}
	go utils.SendNotification(u.FCMToken, title, body, data)
}
