package clinic

import (
	"strings"

	"klinik-backend/internal/metrics"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"
)

// Authenticate mencocokkan email+password ke empat sumber kredensial
// secara berurutan, SUMBER PERTAMA YANG COCOK MENANG (sumber berikutnya
// tidak dicek lagi):
//
//	1. tabel kredensial statis per-user
//	2. tabel legacy satu-akun-per-role
//	3. akun self-service hasil signup (roleAccounts)
//	4. koleksi User umum
//
// Setelah ada yang cocok, status User record-nya WAJIB dicek dulu:
// kalau bukan Active, gagal dengan ErrAccountPending — berlaku untuk
// SEMUA sumber, termasuk akun self-service. (Sistem lama meloloskan
// sumber 3 tanpa cek status; itu bertentangan dengan alur signup yang
// menjanjikan "tunggu approval admin", jadi di sini disamakan.)
func (s *State) Authenticate(email, password string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.AuthFailures.WithLabelValues("invalid").Inc()
		return Identity{}, ErrInvalidCredentials
	}

	match, ok := s.resolveCredential(email, password)
	if !ok {
		metrics.AuthFailures.WithLabelValues("invalid").Inc()
		return Identity{}, ErrInvalidCredentials
	}

	// Cek status SEBELUM sukses, bukan sesudah. User record dicari
	// dari NAMA identitas yang cocok, bukan email login — email akun
	// legacy per-role (doctor@klinik.local dsb) tidak punya User
	// record, kalau dicari pakai email ceknya lolos begitu saja.
	u := s.findUserByName(match.Name)
	if u == nil {
		u = s.findUserByEmail(email)
	}
	if u != nil && u.Status != models.UserActive {
		metrics.AuthFailures.WithLabelValues("pending").Inc()
		return Identity{}, ErrAccountPending
	}

	return match, nil
}

// resolveCredential menjalankan urutan prioritas sumber kredensial.
// "Cocok" artinya email DAN password sama-sama pas; email yang ada
// tapi passwordnya salah tetap lanjut ke sumber berikutnya.
func (s *State) resolveCredential(email, password string) (Identity, bool) {
	// 1. Tabel statis per-user
	for _, cred := range s.seedCreds {
		if strings.EqualFold(cred.Email, email) && utils.CheckPassword(password, cred.Hash) {
			return Identity{Name: cred.Name, Role: cred.Role}, true
		}
	}

	// 2. Tabel legacy per-role
	for _, cred := range s.legacyCreds {
		if strings.EqualFold(cred.Email, email) && utils.CheckPassword(password, cred.Hash) {
			return Identity{Name: cred.Name, Role: cred.Role}, true
		}
	}

	// 3. Akun self-service, urutan role dibuat tetap biar deterministik
	for _, role := range []models.Role{models.RoleAdmin, models.RoleDoctor, models.RolePatient, models.RolePharmacist} {
		for _, acc := range s.roleAccounts[role] {
			if strings.EqualFold(acc.Email, email) && utils.CheckPassword(password, acc.Hash) {
				return Identity{Name: acc.Name, Role: role}, true
			}
		}
	}

	// 4. Koleksi User umum
	for _, u := range s.users {
		if u.Email != "" && strings.EqualFold(u.Email, email) && u.PasswordHash != "" &&
			utils.CheckPassword(password, u.PasswordHash) {
			return Identity{Name: u.Name, Role: u.Role}, true
		}
	}

	return Identity{}, false
}

// RegisterAccount membuat akun self-service baru. Status awal SELALU
// Pending — tidak bisa login sampai admin approve. Email harus unik
// di SEMUA sumber kredensial, bukan cuma di koleksi User.
func (s *State) RegisterAccount(in models.RegisterInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || !in.Role.IsValid() {
		return models.User{}, ErrValidation
	}

	if s.emailTaken(email) {
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           s.nextUserID(),
		Name:         name,
		Role:         in.Role,
		Status:       models.UserPending,
		Contact:      in.Contact,
		Email:        email,
		PasswordHash: hash,
	}

	s.users = append(s.users, user)
	s.roleAccounts[in.Role] = append(s.roleAccounts[in.Role], Account{
		Name:    name,
		Email:   email,
		Hash:    hash,
		Contact: in.Contact,
	})

	s.persistUsers()
	s.persistRoleAccounts()

	return user.WithoutPassword(), nil
}

func (s *State) emailTaken(email string) bool {
	for _, cred := range s.seedCreds {
		if strings.EqualFold(cred.Email, email) {
			return true
		}
	}
	for _, cred := range s.legacyCreds {
		if strings.EqualFold(cred.Email, email) {
			return true
		}
	}
	for _, accounts := range s.roleAccounts {
		for _, acc := range accounts {
			if strings.EqualFold(acc.Email, email) {
				return true
			}
		}
	}
	return s.findUserByEmail(email) != nil
}

// SetFCMToken menyimpan token device user untuk push notification.
// Dipanggil saat login kalau app mobile mengirim tokennya.
func (s *State) SetFCMToken(name, token string) {
	if token == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findUserByName(name); u != nil {
		u.FCMToken = token
		s.persistUsers()
	}
}
