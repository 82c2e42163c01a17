package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "rahasia_dapur_klinik" // Fallback kalau .env lupa diisi
	}
	return []byte(secret)
}

// GenerateToken membuat JWT string yang berisi nama display dan role user
func GenerateToken(name string, role string) (string, error) {
	claims := jwt.MapClaims{
		"name": name,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken memverifikasi token dan balikin name + role di dalamnya
func ValidateToken(encodedToken string) (string, string, error) {
	token, err := jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma enkripsi (harus HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("token tidak valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("gagal memproses claims")
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if name == "" || role == "" {
		return "", "", errors.New("claims tidak lengkap")
	}
	return name, role, nil
}
