package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"klinik-backend/pkg/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		// 3. Validasi Token, ambil identitas dari claims
		name, role, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		// Simpan ke context biar handler tinggal ambil
		c.Set("name", name)
		c.Set("role", role)

		c.Next()
	}
}

// RoleOnly: satpam per-dashboard. Role di luar daftar ditolak.
func RoleOnly(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
			c.Abort()
			return
		}

		current := role.(string)
		for _, a := range allowed {
			if current == a {
				c.Next()
				return
			}
		}

		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak: role tidak sesuai", nil)
		c.Abort()
	}
}
