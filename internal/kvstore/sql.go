package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// sqlStore implements [Store] on top of database/sql. The PostgreSQL and
// SQLite constructors only differ in driver, placeholder format, and error
// classifier; all query logic lives here.
type sqlStore struct {
	db         *sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	logger     *logger.Logger
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetQuery(s.builder, key)
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", s.wrap(ctx, "Get", key, err)
	}

	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertQuery(s.builder, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.wrap(ctx, "Set", key, err)
	}
	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	return s.MultiRemove(ctx, []string{key})
}

func (s *sqlStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	query, args, err := buildMultiGetQuery(s.builder, keys)
	if err != nil {
		return nil, fmt.Errorf("build multi-get query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(ctx, "MultiGet", "", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan kv entry row: %w", err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv entry rows: %w", err)
	}

	return values, nil
}

// MultiSet writes all pairs inside one transaction so the batch is applied
// as a whole or not at all.
func (s *sqlStore) MultiSet(ctx context.Context, pairs []KeyValue) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap(ctx, "MultiSet", "", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, pair := range pairs {
		query, args, buildErr := buildUpsertQuery(s.builder, pair.Key, pair.Value, now)
		if buildErr != nil {
			return fmt.Errorf("build upsert query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return s.wrap(ctx, "MultiSet", pair.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return s.wrap(ctx, "MultiSet", "", err)
	}
	return nil
}

func (s *sqlStore) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildRemoveQuery(s.builder, keys)
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.wrap(ctx, "MultiRemove", "", err)
	}
	return nil
}

func (s *sqlStore) GetAllKeys(ctx context.Context) ([]string, error) {
	query, args, err := buildGetAllKeysQuery(s.builder)
	if err != nil {
		return nil, fmt.Errorf("build get-all-keys query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(ctx, "GetAllKeys", "", err)
	}
	defer rows.Close()

	var allKeys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan kv key row: %w", err)
		}
		allKeys = append(allKeys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv key rows: %w", err)
	}

	return allKeys, nil
}

// Close releases the underlying database handle.
func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) wrap(ctx context.Context, op, key string, err error) error {
	log := logger.FromContext(ctx)
	log.Err(err).
		Str("func", "sqlStore."+op).
		Str("key", key).
		Msg("kv store operation failed")

	if s.classifier.Classify(err) == Retryable {
		return fmt.Errorf("%s %q: %w: %w", op, key, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s %q: %w", op, key, err)
}
