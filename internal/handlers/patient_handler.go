package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// BookAppointment: pasien booking konsultasi baru (status awal Pending)
func BookAppointment(c *gin.Context) {
	identity := identityFrom(c)

	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input booking salah", err.Error())
		return
	}

	appt, err := config.State.BookAppointment(identity.Name, input)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusCreated, true, "Booking berhasil! Menunggu konfirmasi dokter.", appt)
}

// GetMyAppointments: daftar appointment milik pasien yang login
func GetMyAppointments(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Appointment Saya",
		config.State.AppointmentsFor(identity))
}

// GetMyRecords: rekam medis pasien sendiri
func GetMyRecords(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Rekam Medis Saya",
		config.State.RecordsFor(identity))
}

// GetMyLabReports: hasil lab pasien sendiri (read-only)
func GetMyLabReports(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Hasil Lab Saya",
		config.State.LabReportsFor(identity))
}

// GetMyPrescriptions: resep atas nama pasien yang login
func GetMyPrescriptions(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Resep Saya",
		config.State.PrescriptionsFor(identity))
}
