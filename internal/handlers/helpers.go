package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/clinic"
	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// identityFrom mengambil identitas hasil kerja AuthMiddleware
func identityFrom(c *gin.Context) clinic.Identity {
	name, _ := c.Get("name")
	role, _ := c.Get("role")
	return clinic.Identity{
		Name: name.(string),
		Role: models.Role(role.(string)),
	}
}

// respond membungkus APIResponse: kalau store lagi degraded (tulisan
// terakhir gagal), tempelkan warning transient di response — data user
// tetap berubah di memory, cuma belum tersimpan.
func respond(c *gin.Context, code int, success bool, message string, data interface{}) {
	if config.State != nil && config.State.Degraded() {
		utils.APIResponseWarn(c, code, success, message, data,
			"Perubahan belum tersimpan ke storage, server jalan mode in-memory")
		return
	}
	utils.APIResponse(c, code, success, message, data)
}

// domainError memetakan error domain ke status HTTP + pesan.
// Balikin true kalau err memang ada (sudah di-handle).
func domainError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, clinic.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, clinic.ErrForbidden):
		utils.APIResponse(c, http.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, clinic.ErrInvalidTransition),
		errors.Is(err, clinic.ErrValidation),
		errors.Is(err, clinic.ErrUnknownMedication),
		errors.Is(err, clinic.ErrDuplicateEmail):
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, clinic.ErrInvalidCredentials):
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
	case errors.Is(err, clinic.ErrAccountPending):
		utils.APIResponse(c, http.StatusForbidden, false, "Akun Anda masih menunggu persetujuan Admin", nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan di server", nil)
	}
	return true
}
