package models

// PlatformSettings: singleton, cuma bisa diubah admin, tidak punya
// lifecycle selain overwrite total.
type PlatformSettings struct {
	Enforce2FA      bool `json:"enforce2FA"`
	EncryptAtRest   bool `json:"encryptAtRest"`
	RetentionMonths int  `json:"retentionMonths"` // Minimal 12 bulan
}

// Input update settings dari admin
type UpdateSettingsInput struct {
	Enforce2FA      *bool `json:"enforce2FA" binding:"required"`
	EncryptAtRest   *bool `json:"encryptAtRest" binding:"required"`
	RetentionMonths int   `json:"retentionMonths" binding:"required,min=12"`
}
