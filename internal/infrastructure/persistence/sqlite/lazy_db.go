package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/repository"
	"github.com/bnema/hoverpane/internal/logging"
)

// ErrClosed is returned by DB after Close.
var ErrClosed = errors.New("sqlite: store closed")

// LazyDB implements port.DatabaseProvider with lazy initialization.
// The database connection is created on first access, so commands that
// never touch the recent list skip the WASM compilation and migrations.
type LazyDB struct {
	dbPath string
	opts   StoreOptions
	db     *sql.DB
	err    error
	closed bool
	once   sync.Once
	mu     sync.RWMutex
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the file at dbPath. Nothing is opened
// until DB is called.
func NewLazyDB(dbPath string, opts StoreOptions) *LazyDB {
	return &LazyDB{dbPath: dbPath, opts: opts}
}

// NewRecentStore creates the lazily opened recent list database.
func NewRecentStore(dbPath string) *LazyDB {
	return NewLazyDB(dbPath, RecentStoreOptions())
}

// DB returns the database connection, opening it on first use. A failed
// open is not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := OpenStore(ctx, l.dbPath, l.opts)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Str("path", l.dbPath).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrClosed
	}
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Recent opens the store if needed and returns the recent list repository.
func (l *LazyDB) Recent(ctx context.Context) (repository.RecentRepository, error) {
	db, err := l.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewRecentRepository(db), nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}
