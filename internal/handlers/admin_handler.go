package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// GetDashboardStats menampilkan ringkasan angka untuk dashboard admin
func GetDashboardStats(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Data Dashboard Admin",
		config.State.DashboardStats())
}

// GetAllUsers melihat semua akun (tanpa hash password)
func GetAllUsers(c *gin.Context) {
	identity := identityFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Data Semua User",
		config.State.UsersFor(identity))
}

// VerifyUser menyetujui atau menolak akun Pending.
// approve: Pending -> Active. reject: akun dihapus.
func VerifyUser(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))
	var input struct {
		Action string `json:"action" binding:"required,oneof=approve reject"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", nil)
		return
	}

	if input.Action == "approve" {
		user, err := config.State.ApproveUser(id)
		if domainError(c, err) {
			return
		}
		respond(c, http.StatusOK, true, "User berhasil di-approve", user)
		return
	}

	if err := config.State.DeleteUser(id); domainError(c, err) {
		return
	}
	respond(c, http.StatusOK, true, "User ditolak dan dihapus", nil)
}

// DeactivateUser menonaktifkan akun (tidak bisa login lagi)
func DeactivateUser(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	user, err := config.State.DeactivateUser(id)
	if domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "User dinonaktifkan", user)
}

// DeleteUser hard delete akun — hanya lewat aksi admin eksplisit
func DeleteUser(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	if err := config.State.DeleteUser(id); domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "User dihapus", nil)
}

// GetSettings melihat platform settings
func GetSettings(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Platform Settings",
		config.State.Settings())
}

// UpdateSettings overwrite platform settings (retensi minimal 12 bulan)
func UpdateSettings(c *gin.Context) {
	var input models.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input settings salah", err.Error())
		return
	}

	settings := models.PlatformSettings{
		Enforce2FA:      *input.Enforce2FA,
		EncryptAtRest:   *input.EncryptAtRest,
		RetentionMonths: input.RetentionMonths,
	}

	if err := config.State.UpdateSettings(settings); domainError(c, err) {
		return
	}

	respond(c, http.StatusOK, true, "Settings diupdate", settings)
}
