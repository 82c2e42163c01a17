package clinic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klinik-backend/internal/models"
	"klinik-backend/internal/store"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(store.New(store.NewMemory()))
}

func TestBookAppointmentStartsPendingWithNextID(t *testing.T) {
	s := newTestState(t)

	prevMax := 0
	for _, a := range s.appointments {
		if a.ID > prevMax {
			prevMax = a.ID
		}
	}

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel",
		Date:   "2026-03-01",
		Time:   "09:00",
		Reason: "checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, prevMax+1, appt.ID)
	assert.Contains(t, appt.MeetingLink, "Alice")
	assert.Empty(t, appt.ConsultationNote)
}

func TestBookAppointmentRejectsEmptyReason(t *testing.T) {
	s := newTestState(t)
	before := len(s.appointments)

	_, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel",
		Date:   "2026-03-01",
		Time:   "09:00",
		Reason: "   ",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, s.appointments, before)
}

func TestApproveThenCompleteAppendsConsultationNote(t *testing.T) {
	s := newTestState(t)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)

	appt, err = s.ApproveAppointment("Dr. Patel", appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, appt.Status)

	appt, err = s.CompleteAppointment("Dr. Patel", appt.ID, "Patient stable")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)
	assert.Equal(t, "Patient stable", appt.ConsultationNote)

	rec := s.findRecord("Alice Tan")
	require.NotNil(t, rec)
	assert.True(t, strings.HasSuffix(rec.Conditions, "; Patient stable"))
	assert.Equal(t, "2026-03-01", rec.LastVisit)
}

func TestCompleteWithBlankNoteIsNoOp(t *testing.T) {
	s := newTestState(t)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)
	_, err = s.ApproveAppointment("Dr. Patel", appt.ID)
	require.NoError(t, err)

	recBefore := *s.findRecord("Alice Tan")

	_, err = s.CompleteAppointment("Dr. Patel", appt.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	// Tidak ada state yang boleh berubah
	assert.Equal(t, models.AppointmentApproved, s.findAppointment(appt.ID).Status)
	assert.Empty(t, s.findAppointment(appt.ID).ConsultationNote)
	assert.Equal(t, recBefore, *s.findRecord("Alice Tan"))
}

func TestCompleteWithBlankNoteIsNoOpRegardlessOfStatus(t *testing.T) {
	s := newTestState(t)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)

	// Masih Pending: note kosong tetap ErrValidation, bukan ErrInvalidTransition
	_, err = s.CompleteAppointment("Dr. Patel", appt.ID, "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.AppointmentPending, s.findAppointment(appt.ID).Status)
}

func TestOnlyAssignedDoctorMayDecide(t *testing.T) {
	s := newTestState(t)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)

	_, err = s.ApproveAppointment("Dr. Sari", appt.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.RejectAppointment("Dr. Sari", appt.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Equal(t, models.AppointmentPending, s.findAppointment(appt.ID).Status)
}

// Matriks transisi: dari tiap status, cuma transisi yang sah yang jalan.
// Pending -> {Approved, Rejected}, Approved -> Completed, sisanya buntu.
func TestAppointmentTransitionMatrix(t *testing.T) {
	tests := []struct {
		from        models.AppointmentStatus
		canApprove  bool
		canReject   bool
		canComplete bool
	}{
		{models.AppointmentPending, true, true, false},
		{models.AppointmentApproved, false, false, true},
		{models.AppointmentRejected, false, false, false},
		{models.AppointmentCompleted, false, false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from), func(t *testing.T) {
			newAppt := func(s *State) int {
				a, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
					Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
				})
				require.NoError(t, err)
				s.findAppointment(a.ID).Status = tc.from
				return a.ID
			}

			s := newTestState(t)
			id := newAppt(s)
			_, err := s.ApproveAppointment("Dr. Patel", id)
			assert.Equal(t, tc.canApprove, err == nil)

			s = newTestState(t)
			id = newAppt(s)
			_, err = s.RejectAppointment("Dr. Patel", id)
			assert.Equal(t, tc.canReject, err == nil)

			s = newTestState(t)
			id = newAppt(s)
			_, err = s.CompleteAppointment("Dr. Patel", id, "note")
			assert.Equal(t, tc.canComplete, err == nil)
		})
	}
}

func TestRejectIsTerminal(t *testing.T) {
	s := newTestState(t)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)

	_, err = s.RejectAppointment("Dr. Patel", appt.ID)
	require.NoError(t, err)

	// Tidak bisa dibuka lagi
	_, err = s.ApproveAppointment("Dr. Patel", appt.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.CompleteAppointment("Dr. Patel", appt.ID, "note")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAppointmentsSurviveReload(t *testing.T) {
	st := store.New(store.NewMemory())
	s := NewState(st)

	appt, err := s.BookAppointment("Alice Tan", models.BookAppointmentInput{
		Doctor: "Dr. Patel", Date: "2026-03-01", Time: "09:00", Reason: "checkup",
	})
	require.NoError(t, err)

	// State baru dari store yang sama harus lihat appointment tadi
	s2 := NewState(st)
	found := s2.findAppointment(appt.ID)
	require.NotNil(t, found)
	assert.Equal(t, appt, *found)
}
