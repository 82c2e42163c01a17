package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// GetDoctorAppointments: daftar appointment yang ditujukan ke dokter ini
func GetDoctorAppointments(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Appointment Dokter",
		config.State.AppointmentsFor(identity))
}

// GetPatientRecords: dokter lihat rekam medis pasien
func GetPatientRecords(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Rekam Medis Pasien",
		config.State.RecordsFor(identity))
}

// ApproveAppointment: Pending -> Approved
func ApproveAppointment(c *gin.Context) {
	identity := identityFrom(c)
	id := utils.StringToInt(c.Param("id"))

	appt, err := config.State.ApproveAppointment(identity.Name, id)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "Appointment disetujui", appt)
}

// RejectAppointment: Pending -> Rejected (final)
func RejectAppointment(c *gin.Context) {
	identity := identityFrom(c)
	id := utils.StringToInt(c.Param("id"))

	appt, err := config.State.RejectAppointment(identity.Name, id)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "Appointment ditolak", appt)
}

// CompleteAppointment: Approved -> Completed, wajib bawa catatan
// konsultasi. Catatan otomatis masuk ke rekam medis pasien.
func CompleteAppointment(c *gin.Context) {
	identity := identityFrom(c)
	id := utils.StringToInt(c.Param("id"))

	var input models.CompleteAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Catatan konsultasi wajib diisi", nil)
		return
	}

	appt, err := config.State.CompleteAppointment(identity.Name, id, input.Note)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "Konsultasi selesai, catatan masuk rekam medis", appt)
}

// CreatePrescription: dokter menulis resep baru.
// Response ikut membawa warning interaksi obat (kalau ada) supaya
// dokter bisa langsung mempertimbangkan.
func CreatePrescription(c *gin.Context) {
	identity := identityFrom(c)

	var input models.CreatePrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input resep salah", err.Error())
		return
	}

	prescription, warnings, err := config.State.CreatePrescription(identity.Name, input)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusCreated, true, "Resep berhasil dibuat", gin.H{
		"prescription":         prescription,
		"interaction_warnings": warnings,
	})
}

// GetDoctorPrescriptions: resep yang ditulis dokter ini
func GetDoctorPrescriptions(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Resep yang Saya Tulis",
		config.State.PrescriptionsFor(identity))
}
