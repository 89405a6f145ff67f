package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/flotilla/pkg/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database at connStr.
// The caller is responsible for calling Close() on the repository.
// The schema is expected to exist already, see migrations/postgres.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}
	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Load(ctx context.Context, key uuid.UUID) (*Record, error) {
	q := `
	SELECT version, data FROM records WHERE record_key = $1;
	`
	var version int64
	var data []byte
	if err := r.conn.QueryRow(ctx, q, key.String()).Scan(&version, &data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan record: %v", err)
	}

	return &Record{
		Version: uint64(version),
		Data:    data,
	}, nil
}

func (r *PostgresRepository) Store(ctx context.Context, key uuid.UUID, record *Record) (uint64, error) {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	var q string
	var args []interface{}
	if record.Version == 0 {
		q = `
		INSERT INTO records (record_key, version, data) VALUES ($1, 1, $2)
		ON CONFLICT (record_key) DO NOTHING;
		`
		args = []interface{}{key.String(), record.Data}
	} else {
		q = `
		UPDATE records SET version = version + 1, data = $2, updated_at = now()
		WHERE record_key = $1 AND version = $3;
		`
		args = []interface{}{key.String(), record.Data, int64(record.Version)}
	}

	tag, err := tx.Exec(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to write record: %v", err)
	}
	if tag.RowsAffected() == 0 {
		var actual int64
		err := tx.QueryRow(ctx, "SELECT version FROM records WHERE record_key = $1;", key.String()).Scan(&actual)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to scan record version: %v", err)
		}
		return 0, &ErrConflict{Key: key, Expected: record.Version, Actual: uint64(actual)}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return record.Version + 1, nil
}
