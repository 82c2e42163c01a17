package models

// Alur status appointment (satu arah, tidak bisa mundur):
//
//	Pending --approve--> Approved --complete--> Completed
//	Pending --reject---> Rejected
//
// Rejected dan Completed adalah status final.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentApproved  AppointmentStatus = "Approved"
	AppointmentRejected  AppointmentStatus = "Rejected"
	AppointmentCompleted AppointmentStatus = "Completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentRejected, AppointmentCompleted:
		return true
	}
	return false
}

// IsTerminal: status final tidak boleh ditransisikan lagi
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentRejected || s == AppointmentCompleted
}

// Appointment dibuat pasien (status awal Pending), lalu diproses dokter.
// ConsultationNote selalu kosong sampai dokter menyelesaikan konsultasi.
type Appointment struct {
	ID               int               `json:"id"`
	Patient          string            `json:"patient"`
	Doctor           string            `json:"doctor"`
	Date             string            `json:"date"` // Format YYYY-MM-DD
	Time             string            `json:"time"` // Format HH:MM
	Reason           string            `json:"reason"`
	Status           AppointmentStatus `json:"status"`
	MeetingLink      string            `json:"meetingLink"`
	ConsultationNote string            `json:"consultationNote"`
}

// Input booking dari pasien
type BookAppointmentInput struct {
	Doctor string `json:"doctor" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// Input saat dokter menyelesaikan appointment
type CompleteAppointmentInput struct {
	Note string `json:"note" binding:"required"`
}
