package clinic

import (
	"strings"
	"sync"

	"klinik-backend/internal/models"
	"klinik-backend/internal/store"
)

// Key blob di persisted store, satu blob JSON per koleksi
const (
	KeyUsers         = "users"
	KeyAppointments  = "appointments"
	KeyRecords       = "records"
	KeyPrescriptions = "prescriptions"
	KeySettings      = "platformSettings"
	KeyRoleAccounts  = "roleAccounts"
)

// Identity adalah hasil autentikasi: siapa yang sedang beraksi dan
// sebagai role apa. Semua query/operasi lifecycle menerima ini.
type Identity struct {
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// Credential: satu baris tabel kredensial statis (seed / legacy)
type Credential struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Hash  string      `json:"passwordHash"`
}

// Account: akun self-service hasil signup, dikelompokkan per role
type Account struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Hash    string `json:"passwordHash"`
	Contact string `json:"contact"`
}

// State memegang seluruh koleksi domain di memory, di-mirror ke store
// setelah tiap mutasi. Satu mutex menserialisasi semua mutasi — ini
// model single-writer yang eksplisit, bukan concurrency halus:
// snapshot in-memory adalah source of truth, store cuma durabilitas.
type State struct {
	mu    sync.Mutex
	store *store.Store

	users         []models.User
	appointments  []models.Appointment
	records       []models.MedicalRecord
	labReports    []models.LabReport
	prescriptions []models.Prescription
	settings      models.PlatformSettings
	roleAccounts  map[models.Role][]Account

	// Tabel kredensial statis, tidak pernah berubah saat runtime
	seedCreds   []Credential
	legacyCreds []Credential
}

// NewState memuat koleksi dari store (atau seed kalau store kosong/rusak)
func NewState(st *store.Store) *State {
	s := &State{
		store:         st,
		users:         store.Load(st, KeyUsers, seedUsers()),
		appointments:  store.Load(st, KeyAppointments, seedAppointments()),
		records:       store.Load(st, KeyRecords, seedRecords()),
		labReports:    seedLabReports(), // read-only, tidak dipersist
		prescriptions: store.Load(st, KeyPrescriptions, seedPrescriptions()),
		settings:      store.Load(st, KeySettings, defaultSettings()),
		roleAccounts:  store.Load(st, KeyRoleAccounts, map[models.Role][]Account{}),
		seedCreds:     seedCredentials(),
		legacyCreds:   legacyCredentials(),
	}

	// Blob "null" atau rusak bisa bikin map-nya nil
	if s.roleAccounts == nil {
		s.roleAccounts = make(map[models.Role][]Account)
	}

	// Mirror awal biar seed pertama langsung tersimpan
	s.persistAll()
	return s
}

// Degraded true kalau tulisan store terakhir gagal — handler pakai ini
// untuk menempelkan warning di response
func (s *State) Degraded() bool {
	return s.store.Degraded()
}

// ---- Mirror ke store (dipanggil sambil pegang mutex) ----

func (s *State) persistUsers() bool         { return s.store.Save(KeyUsers, s.users) }
func (s *State) persistAppointments() bool  { return s.store.Save(KeyAppointments, s.appointments) }
func (s *State) persistRecords() bool       { return s.store.Save(KeyRecords, s.records) }
func (s *State) persistPrescriptions() bool { return s.store.Save(KeyPrescriptions, s.prescriptions) }
func (s *State) persistSettings() bool      { return s.store.Save(KeySettings, s.settings) }
func (s *State) persistRoleAccounts() bool  { return s.store.Save(KeyRoleAccounts, s.roleAccounts) }

func (s *State) persistAll() {
	s.persistUsers()
	s.persistAppointments()
	s.persistRecords()
	s.persistPrescriptions()
	s.persistSettings()
	s.persistRoleAccounts()
}

// ---- Lookup internal (tanpa lock, caller yang pegang mutex) ----

func (s *State) findUserByEmail(email string) *models.User {
	for i := range s.users {
		if s.users[i].Email != "" && strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}

func (s *State) findUserByName(name string) *models.User {
	for i := range s.users {
		if s.users[i].Name == name {
			return &s.users[i]
		}
	}
	return nil
}

func (s *State) findAppointment(id int) *models.Appointment {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return &s.appointments[i]
		}
	}
	return nil
}

func (s *State) findRecord(patient string) *models.MedicalRecord {
	for i := range s.records {
		if s.records[i].Patient == patient {
			return &s.records[i]
		}
	}
	return nil
}

func (s *State) findPrescription(id string) *models.Prescription {
	for i := range s.prescriptions {
		if s.prescriptions[i].ID == id {
			return &s.prescriptions[i]
		}
	}
	return nil
}

// nextAppointmentID: max(id)+1, BUKAN len+1 — kalau ada data kehapus,
// len+1 bisa nabrak id lama
func (s *State) nextAppointmentID() int {
	max := 0
	for _, a := range s.appointments {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func (s *State) nextUserID() int {
	max := 0
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
