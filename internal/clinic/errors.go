package clinic

import "errors"

// Taksonomi error domain. Semua kegagalan berujung no-op + pesan,
// tidak ada yang fatal ke proses.
var (
	// ErrNotFound: id/record yang diminta tidak ada di koleksi
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrForbidden: operasi dipanggil bukan oleh pemilik yang berhak
	// (misal dokter lain mencoba approve appointment yang bukan miliknya)
	ErrForbidden = errors.New("akses ditolak")

	// ErrInvalidTransition: status sekarang tidak mengizinkan transisi itu.
	// Status final (Rejected/Completed/Dispensed) tidak bisa dibuka lagi.
	ErrInvalidTransition = errors.New("transisi status tidak diizinkan")

	// ErrValidation: field wajib kosong / tidak valid. Operasi jadi no-op.
	ErrValidation = errors.New("input tidak valid")

	// ErrUnknownMedication: obat tidak ada di daftar harga. Resep DITOLAK,
	// bukan dihargai 0 — harga nol diam-diam itu bug kualitas data.
	ErrUnknownMedication = errors.New("obat tidak ada di daftar harga")

	// Error autentikasi, dibedakan biar pesan ke user jelas
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrAccountPending     = errors.New("akun masih menunggu persetujuan admin")
	ErrDuplicateEmail     = errors.New("email sudah terdaftar")
)
