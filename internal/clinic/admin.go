package clinic

import (
	"strings"

	"klinik-backend/internal/models"
)

// Operasi admin terhadap user dan platform settings.
// Role user TIDAK PERNAH diubah di sini — immutable sejak akun dibuat.

// ApproveUser: Pending -> Active. Setelah ini akun self-service baru
// bisa login.
func (s *State) ApproveUser(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			if s.users[i].Status != models.UserPending {
				return models.User{}, ErrInvalidTransition
			}
			s.users[i].Status = models.UserActive
			s.persistUsers()
			return s.users[i].WithoutPassword(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// DeactivateUser: Active -> Inactive (akun tidak bisa login lagi)
func (s *State) DeactivateUser(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = models.UserInactive
			s.persistUsers()
			return s.users[i].WithoutPassword(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// DeleteUser: hard delete, cuma lewat aksi admin eksplisit.
// Akun self-service ikut dicabut dari roleAccounts biar tidak bisa
// login lewat jalur itu.
func (s *State) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		email := s.users[i].Email
		role := s.users[i].Role
		s.users = append(s.users[:i], s.users[i+1:]...)

		if email != "" {
			accounts := s.roleAccounts[role]
			for j := range accounts {
				if strings.EqualFold(accounts[j].Email, email) {
					s.roleAccounts[role] = append(accounts[:j], accounts[j+1:]...)
					s.persistRoleAccounts()
					break
				}
			}
		}

		s.persistUsers()
		return nil
	}
	return ErrNotFound
}

// Settings mengembalikan snapshot platform settings
func (s *State) Settings() models.PlatformSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings overwrite total singleton settings.
// Retensi data minimal 12 bulan, di bawah itu ditolak.
func (s *State) UpdateSettings(in models.PlatformSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.RetentionMonths < 12 {
		return ErrValidation
	}

	s.settings = in
	s.persistSettings()
	return nil
}
