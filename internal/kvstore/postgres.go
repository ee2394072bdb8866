package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// PostgresStore is the server-side [Store] backend.
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore opens a PostgreSQL-backed store using the pgx stdlib
// driver. The connection is pinged before being returned; schema management
// is the caller's responsibility (see the migrations package).
func NewPostgresStore(ctx context.Context, dsn string, log *logger.Logger) (*PostgresStore, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error occured during database connection")
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info().Str("func", "NewPostgresStore").Msg("connected to database successfully")

	return &PostgresStore{
		sqlStore: &sqlStore{
			db:         conn,
			builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			classifier: NewPostgresErrorClassifier(),
			logger:     log,
		},
	}, nil
}

// DB exposes the underlying handle for migrations.
func (p *PostgresStore) DB() *sql.DB {
	return p.sqlStore.db
}
