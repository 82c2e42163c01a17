package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klinik-backend/internal/config"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// REGISTER (self-service signup)
func Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Buat akun (status awal Pending, nunggu approval Admin)
	user, err := config.State.RegisterAccount(input)
	if domainError(c, err) {
		return
	}

	// 3. Sukses
	respond(c, http.StatusCreated, true, "Registrasi berhasil! Akun Anda menunggu persetujuan Admin.", user)
}

// LOGIN
func Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	// 2. Resolve kredensial (4 sumber, urutan tetap)
	identity, err := config.State.Authenticate(input.Email, input.Password)
	if domainError(c, err) {
		return
	}

	// 3. Kalau app mobile kirim token FCM, simpan buat push notification
	if input.FCMToken != "" {
		config.State.SetFCMToken(identity.Name, input.FCMToken)
	}

	// 4. Generate JWT Token
	token, err := utils.GenerateToken(identity.Name, string(identity.Role))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	// 5. Sukses & Kirim Token
	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token": token,
		"user": gin.H{
			"name": identity.Name,
			"role": identity.Role,
		},
	})
}

// GetProfile mengambil data user yang sedang login
func GetProfile(c *gin.Context) {
	identity := identityFrom(c)

	if user, ok := config.State.UserByName(identity.Name); ok {
		utils.APIResponse(c, http.StatusOK, true, "Data Profile Berhasil Diambil", user)
		return
	}

	// Akun legacy bisa tidak punya User record, balikin claims saja
	utils.APIResponse(c, http.StatusOK, true, "Data Profile Berhasil Diambil", gin.H{
		"name": identity.Name,
		"role": identity.Role,
	})
}
