package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/storage/redis"
	"github.com/tether-travel/tether/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the SQLite database under state_dir.
	BackendSQLite = "sqlite"
	// BackendRedis selects a Redis server.
	BackendRedis = "redis"
	// BackendMemory keeps values for the lifetime of the process only.
	BackendMemory = "memory"

	databaseFileName = "tether.db"
	redisKeyPrefix   = "tether:results:"
	redisDialTimeout = 5 * time.Second
)

var (
	_ Store = (*sqlite.SQLiteStorage)(nil)
	_ Store = (*redis.Storage)(nil)
	_ Store = (*MemoryStore)(nil)
)

// NewFromConfig creates the store selected by the store_backend setting.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("store_backend", BackendSQLite))
}

// NewForBackend creates a store for the named backend. When a persistent
// backend cannot be opened the session continues with an in-memory store;
// persistence is best effort.
func NewForBackend(backend string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		dbPath := filepath.Join(config.Get("state_dir", ""), databaseFileName)
		s, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to open sqlite store, results will not persist: %v", err))
			return NewMemoryStore(), nil
		}
		return s, nil
	case BackendRedis:
		s, err := redis.New(redis.Options{
			Addr:        config.Get("redis_addr", "localhost:6379"),
			Password:    config.Get("redis_password", ""),
			DB:          config.GetInt("redis_db", 0),
			KeyPrefix:   redisKeyPrefix,
			DialTimeout: redisDialTimeout,
		})
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to connect to redis store, results will not persist: %v", err))
			return NewMemoryStore(), nil
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
