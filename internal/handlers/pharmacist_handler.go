package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// GetAllPrescriptions: apoteker punya akses penuh ke semua resep
func GetAllPrescriptions(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Semua Resep",
		config.State.PrescriptionsFor(identity))
}

// DispensePrescription: Pending Fulfillment -> Dispensed + catatan apoteker
func DispensePrescription(c *gin.Context) {
	id := c.Param("id")

	var input models.DispenseInput
	// Note boleh kosong, jadi bind error cuma untuk JSON rusak
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	prescription, err := config.State.DispensePrescription(id, input.Note)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "Obat diserahkan", prescription)
}
