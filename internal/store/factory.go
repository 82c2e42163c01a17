package store

import (
	"fmt"
	"os"

	"klinik-backend/pkg/utils"
)

// Open memilih driver berdasarkan environment variable:
//
//	KLINIK_STORE_DRIVER : memory|leveldb|redis (default leveldb)
//	KLINIK_LEVELDB_PATH : folder data saat driver=leveldb (default ./klinikdata)
//	REDIS_ADDR          : host:port saat driver=redis (default localhost:6379)
//	REDIS_PASSWORD      : password redis (opsional)
//	REDIS_DB            : nomor db redis (default 0)
func Open() (*Store, error) {
	driver := os.Getenv("KLINIK_STORE_DRIVER")
	if driver == "" {
		driver = "leveldb"
	}

	switch driver {
	case "memory":
		return New(NewMemory()), nil
	case "leveldb":
		path := os.Getenv("KLINIK_LEVELDB_PATH")
		if path == "" {
			path = "./klinikdata"
		}
		backend, err := OpenLevelDB(path)
		if err != nil {
			return nil, err
		}
		return New(backend), nil
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		backend, err := OpenRedis(addr, os.Getenv("REDIS_PASSWORD"), utils.StringToInt(os.Getenv("REDIS_DB")))
		if err != nil {
			return nil, err
		}
		return New(backend), nil
	default:
		return nil, fmt.Errorf("store driver tidak dikenal: %s", driver)
	}
}
