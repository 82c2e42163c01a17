package models

// Role menentukan dashboard mana yang boleh diakses user
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
	RolePharmacist Role = "pharmacist"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient, RolePharmacist:
		return true
	}
	return false
}

// UserStatus: akun baru dari signup statusnya Pending sampai di-approve Admin
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
	UserPending  UserStatus = "Pending"
)

// User merepresentasikan satu akun di sistem
// Catatan: Role TIDAK BOLEH berubah setelah akun dibuat.
// PasswordHash ikut diserialisasi ke store (bukan ke response API,
// handler wajib panggil WithoutPassword dulu sebelum kirim ke frontend).
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Contact      string     `json:"contact"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	FCMToken     string     `json:"fcmToken,omitempty"` // Token device untuk push notification (opsional)
}

// WithoutPassword mengembalikan copy user tanpa data sensitif
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	u.FCMToken = ""
	return u
}

// Struct untuk menangkap Input Register dari user (self-service signup)
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role" binding:"required,oneof=doctor patient pharmacist"`
	Contact  string `json:"contact"`
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"` // Opsional, dikirim app mobile
}
