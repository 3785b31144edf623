package authclient

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// CredentialEntry is one of the two persisted rows backing the store.
type CredentialEntry struct {
	bun.BaseModel `bun:"table:credential_entries,alias:ce"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunCredentialStore persists the credential pair in a local sqlite database
// so a session survives process restarts, the way the browser's storage
// survives page reloads.
type BunCredentialStore struct {
	db     *bun.DB
	logger Logger
}

var _ CredentialStore = (*BunCredentialStore)(nil)

// NewBunCredentialStore wraps an existing bun handle.
func NewBunCredentialStore(db *bun.DB) *BunCredentialStore {
	return &BunCredentialStore{
		db:     db,
		logger: defLogger{},
	}
}

// OpenCredentialStore opens (or creates) the sqlite database at the
// configured storage path and prepares the backing table.
func OpenCredentialStore(ctx context.Context, cfg Config) (*BunCredentialStore, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.GetStoragePath())
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to open credential storage")
	}

	store := NewBunCredentialStore(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *BunCredentialStore) WithLogger(logger Logger) *BunCredentialStore {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Init creates the backing table if needed.
func (s *BunCredentialStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*CredentialEntry)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to initialize credential storage")
	}
	return nil
}

// Set writes the credential and role in one transaction so the pair can
// never be observed half written.
func (s *BunCredentialStore) Set(ctx context.Context, credential string, role Role) error {
	now := time.Now()
	entries := []CredentialEntry{
		{Key: CredentialKey, Value: credential, UpdatedAt: now},
		{Key: RoleKey, Value: string(role), UpdatedAt: now},
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range entries {
			_, err := tx.NewInsert().
				Model(&entries[i]).
				On("CONFLICT (key) DO UPDATE").
				Set("value = EXCLUDED.value").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist credential")
	}

	return nil
}

// Get returns the stored credential, if any. Read failures are logged and
// reported as an absent credential; every failure path in this subsystem
// resolves to "stay anonymous".
func (s *BunCredentialStore) Get(ctx context.Context) (string, bool) {
	value, ok := s.lookup(ctx, CredentialKey)
	return value, ok && value != ""
}

// GetRole returns the recorded role, if any.
func (s *BunCredentialStore) GetRole(ctx context.Context) (Role, bool) {
	value, ok := s.lookup(ctx, RoleKey)
	if !ok {
		return "", false
	}
	return ParseRole(value)
}

// Clear deletes both entries in one transaction. Safe to call when the store
// is already empty.
func (s *BunCredentialStore) Clear(ctx context.Context) error {
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*CredentialEntry)(nil)).
			Where("key IN (?, ?)", CredentialKey, RoleKey).
			Exec(ctx)
		return err
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to clear credential storage")
	}
	return nil
}

// Close releases the underlying database handle.
func (s *BunCredentialStore) Close() error {
	return s.db.Close()
}

func (s *BunCredentialStore) lookup(ctx context.Context, key string) (string, bool) {
	entry := new(CredentialEntry)
	err := s.db.NewSelect().
		Model(entry).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if !goerrors.Is(err, sql.ErrNoRows) {
			s.logger.Error("credential storage read error", "key", key, "error", err)
		}
		return "", false
	}
	return entry.Value, true
}
