package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dulceandina/panela-backend/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/semaphore"
)

// maxConcurrentReads bounds how many aggregate queries one report fan-out
// may run against the pool at once.
const maxConcurrentReads = 10

type DB struct {
	*sqlx.DB
	sem *semaphore.Weighted
}

var (
	dbInstance *DB
	once       sync.Once
)

// NewDB creates the shared database connection pool.
func NewDB(cfg *config.DatabaseConfig) (*DB, error) {
	var err error
	once.Do(func() {
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

		var db *sqlx.DB
		db, err = sqlx.Connect("postgres", connStr)
		if err != nil {
			return
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		dbInstance = &DB{
			DB:  db,
			sem: semaphore.NewWeighted(maxConcurrentReads),
		}
	})

	return dbInstance, err
}

// Gate runs fn while holding one of the bounded read slots. The analytics
// report fans out up to two queries per bucket; the semaphore keeps a single
// request from saturating the pool.
func (db *DB) Gate(ctx context.Context, fn func() error) error {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire read slot: %w", err)
	}
	defer db.sem.Release(1)

	return fn()
}
