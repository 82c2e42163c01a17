package store

import "errors"

// ErrNotFound dikembalikan backend kalau key tidak ada
var ErrNotFound = errors.New("store: key tidak ditemukan")

// Backend adalah kontrak driver key-value mentah (byte in, byte out).
// Implementasi: memory, leveldb, redis. Semua error driver ditelan
// di layer Store, caller tidak pernah kena panic/error dari sini.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
