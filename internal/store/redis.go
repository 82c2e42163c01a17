package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisBackend: driver untuk deployment yang sudah punya Redis.
// Key domain di-prefix biar tidak tabrakan sama data lain di instance yg sama.
type redisBackend struct {
	client *redis.Client
	prefix string
}

// OpenRedis membuat backend Redis dan langsung test koneksinya
func OpenRedis(addr, password string, db int) (Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisBackend{client: client, prefix: "klinik:"}, nil
}

func (r *redisBackend) Get(key string) ([]byte, error) {
	raw, err := r.client.Get(context.Background(), r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return raw, err
}

func (r *redisBackend) Put(key string, value []byte) error {
	// Tanpa TTL: data domain harus persist selamanya
	return r.client.Set(context.Background(), r.prefix+key, value, 0).Err()
}

func (r *redisBackend) Delete(key string) error {
	return r.client.Del(context.Background(), r.prefix+key).Err()
}

func (r *redisBackend) Close() error {
	return r.client.Close()
}
