package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/logging"
)

// LazyDB implements port.DatabaseProvider with lazy initialization.
// The connection is opened on first access, so commands that never read
// state (config, help) never compile the WASM module or create the file.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a new lazy database provider.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
// This method is thread-safe and will only initialize once.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening state database")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyKVStore is a KVStore whose connection is opened on first use.
type LazyKVStore struct {
	provider port.DatabaseProvider
	store    *KVStore
	once     sync.Once
	initErr  error
}

// Compile-time interface check.
var _ port.KeyValueStore = (*LazyKVStore)(nil)

// NewLazyKVStore creates a store backed by provider.
func NewLazyKVStore(provider port.DatabaseProvider) *LazyKVStore {
	return &LazyKVStore{provider: provider}
}

func (s *LazyKVStore) init(ctx context.Context) error {
	s.once.Do(func() {
		db, err := s.provider.DB(ctx)
		if err != nil {
			s.initErr = err
			return
		}
		s.store = NewKVStore(db)
	})
	return s.initErr
}

func (s *LazyKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, key)
}

func (s *LazyKVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Set(ctx, key, value)
}

func (s *LazyKVStore) Delete(ctx context.Context, key string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

func (s *LazyKVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.Keys(ctx, prefix)
}

func (s *LazyKVStore) Clear(ctx context.Context) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Clear(ctx)
}
