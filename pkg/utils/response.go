package utils

import (
	"github.com/gin-gonic/gin"
)

// Format response standar biar frontend enak bacanya.
// Warning dipakai kalau mutasi sukses tapi gagal tersimpan ke store
// (degraded mode) — user tetap dapat hasilnya plus peringatan.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// APIResponseWarn sama seperti APIResponse tapi bawa warning transient
func APIResponseWarn(c *gin.Context, code int, success bool, message string, data interface{}, warning string) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
		Warning: warning,
	})
}
