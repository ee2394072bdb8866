package kvstore

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// SQLiteStore is the local single-file [Store] backend used when no
// PostgreSQL DSN is configured.
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore opens (or creates) the SQLite database at path and ensures
// the kv_entries table exists. WAL mode is enabled so the background workers
// can read while a request writes.
func NewSQLiteStore(path string, log *logger.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			entry_key   TEXT PRIMARY KEY,
			entry_value TEXT NOT NULL,
			updated_at  TIMESTAMP NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv_entries table: %w", err)
	}

	log.Info().Str("func", "NewSQLiteStore").Str("path", path).Msg("opened local sqlite store")

	return &SQLiteStore{
		sqlStore: &sqlStore{
			db:         db,
			builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
			classifier: noRetryClassifier{},
			logger:     log,
		},
	}, nil
}
