package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"klinik-backend/internal/clinic"
	"klinik-backend/internal/store"
)

// Global aplikasi, diisi sekali di main lewat Init().
// State adalah satu-satunya pemegang koleksi domain (single writer).
var (
	Store *store.Store
	State *clinic.State
)

// InitLogger setup zerolog global. Mode development pakai console writer
// biar enak dibaca, selain itu JSON ke stdout.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Str("service", "klinik-backend").Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", "klinik-backend").
			Logger()
	}
}

// Init membuka persisted store lalu memuat state domain.
// Kalau store durable gagal dibuka (disk penuh, redis mati, dsb),
// JANGAN crash — jatuh ke backend memory, aplikasi jalan tanpa
// durabilitas dan setiap response bawa warning.
func Init() {
	st, err := store.Open()
	if err != nil {
		log.Warn().Err(err).Msg("store durable gagal dibuka, pakai mode in-memory")
		st = store.New(store.NewMemory())
	}

	Store = st
	State = clinic.NewState(st)
	log.Info().Msg("state klinik siap")
}
