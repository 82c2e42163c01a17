package store

import (
	"encoding/json"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"klinik-backend/internal/metrics"
)

// Store membungkus Backend dengan serialisasi JSON.
// Kontraknya: TIDAK PERNAH gagal ke caller. Backend error / data korup
// cuma bikin Load balikin fallback dan Save balikin false — aplikasi
// tetap jalan pakai data in-memory (degraded mode).
type Store struct {
	backend  Backend
	degraded atomic.Bool
}

func New(b Backend) *Store {
	return &Store{backend: b}
}

// Load membaca key dan decode ke T. Kalau backend tidak ada, key hilang,
// atau JSON-nya tidak bisa diparse, balikin fallback. Tidak pernah error.
func Load[T any](s *Store, key string, fallback T) T {
	if s == nil || s.backend == nil {
		return fallback
	}

	raw, err := s.backend.Get(key)
	if err != nil {
		if err != ErrNotFound {
			log.Warn().Err(err).Str("key", key).Msg("store: gagal baca, pakai fallback")
			metrics.StoreFailures.WithLabelValues("load").Inc()
		}
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		// Data korup dianggap sama dengan tidak ada
		log.Warn().Err(err).Str("key", key).Msg("store: data korup, pakai fallback")
		metrics.StoreFailures.WithLabelValues("decode").Inc()
		return fallback
	}
	return out
}

// Save serialisasi value lalu tulis ke backend.
// Balikin false (bukan error) kalau gagal — caller tinggal munculkan
// warning ke user, mutasi in-memory tetap dianggap sukses.
func (s *Store) Save(key string, value any) bool {
	if s == nil || s.backend == nil {
		return false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("store: gagal serialisasi")
		metrics.StoreFailures.WithLabelValues("encode").Inc()
		return false
	}

	if err := s.backend.Put(key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("store: gagal tulis")
		metrics.StoreFailures.WithLabelValues("save").Inc()
		s.degraded.Store(true)
		return false
	}

	s.degraded.Store(false)
	return true
}

// Remove menghapus key. Kontrak kegagalan sama dengan Save.
func (s *Store) Remove(key string) bool {
	if s == nil || s.backend == nil {
		return false
	}

	if err := s.backend.Delete(key); err != nil && err != ErrNotFound {
		log.Error().Err(err).Str("key", key).Msg("store: gagal hapus")
		metrics.StoreFailures.WithLabelValues("remove").Inc()
		s.degraded.Store(true)
		return false
	}

	s.degraded.Store(false)
	return true
}

// Degraded true kalau tulisan terakhir gagal. Dipakai handler untuk
// menempelkan warning "perubahan belum tersimpan" di response.
func (s *Store) Degraded() bool {
	if s == nil {
		return false
	}
	return s.degraded.Load()
}

func (s *Store) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
