package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klinik-backend/internal/models"
)

func TestApproveUserOnlyFromPending(t *testing.T) {
	s := newTestState(t)

	// User Active tidak bisa di-approve ulang
	_, err := s.ApproveUser(4) // Alice Tan, Active dari seed
	assert.ErrorIs(t, err, ErrInvalidTransition)

	user, err := s.RegisterAccount(models.RegisterInput{
		Name: "Dewi", Email: "dewi@mail.test", Password: "rahasia1", Role: models.RolePatient,
	})
	require.NoError(t, err)

	approved, err := s.ApproveUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserActive, approved.Status)
	// Role tidak berubah saat approval
	assert.Equal(t, models.RolePatient, approved.Role)
}

func TestDeactivateUserBlocksLogin(t *testing.T) {
	s := newTestState(t)

	u := s.findUserByEmail("budi@mail.test")
	require.NotNil(t, u)

	_, err := s.DeactivateUser(u.ID)
	require.NoError(t, err)

	_, err = s.Authenticate("budi@mail.test", "pasien123")
	assert.ErrorIs(t, err, ErrAccountPending)
}

func TestDeleteUserRemovesSelfServiceAccount(t *testing.T) {
	s := newTestState(t)

	user, err := s.RegisterAccount(models.RegisterInput{
		Name: "Dewi", Email: "dewi@mail.test", Password: "rahasia1", Role: models.RolePatient,
	})
	require.NoError(t, err)
	_, err = s.ApproveUser(user.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(user.ID))

	// Jalur login self-service ikut tercabut
	_, err = s.Authenticate("dewi@mail.test", "rahasia1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, s.roleAccounts[models.RolePatient])

	assert.ErrorIs(t, s.DeleteUser(user.ID), ErrNotFound)
}

func TestUpdateSettings(t *testing.T) {
	s := newTestState(t)

	err := s.UpdateSettings(models.PlatformSettings{
		Enforce2FA: true, EncryptAtRest: true, RetentionMonths: 36,
	})
	require.NoError(t, err)
	assert.Equal(t, 36, s.Settings().RetentionMonths)
	assert.True(t, s.Settings().Enforce2FA)
}

func TestUpdateSettingsRejectsShortRetention(t *testing.T) {
	s := newTestState(t)
	before := s.Settings()

	err := s.UpdateSettings(models.PlatformSettings{RetentionMonths: 6})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, s.Settings())
}
