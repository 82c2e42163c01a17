package store

import (
	"github.com/rs/zerolog/log"
	"github.com/syndtr/goleveldb/leveldb"
)

// levelBackend: driver durable default, nyimpen blob JSON per key di
// LevelDB lokal. Pilihan paling simpel untuk single-process tanpa server DB.
type levelBackend struct {
	db *leveldb.DB
}

// OpenLevelDB membuka (atau membuat) database di path tersebut
func OpenLevelDB(path string) (Backend, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("store: LevelDB siap")
	return &levelBackend{db: db}, nil
}

func (l *levelBackend) Get(key string) ([]byte, error) {
	raw, err := l.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return raw, err
}

func (l *levelBackend) Put(key string, value []byte) error {
	return l.db.Put([]byte(key), value, nil)
}

func (l *levelBackend) Delete(key string) error {
	return l.db.Delete([]byte(key), nil)
}

func (l *levelBackend) Close() error {
	return l.db.Close()
}
