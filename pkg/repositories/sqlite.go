package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and runs every migration
// in the migrations directory, in name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection serializes writers
	db.SetMaxOpenConns(1)

	dir, err := os.ReadDir(migrations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Load(ctx context.Context, key uuid.UUID) (*Record, error) {
	q := `
	SELECT version, data FROM records WHERE record_key = ?;
	`
	record := &Record{}
	if err := r.db.QueryRowContext(ctx, q, key.String()).Scan(&record.Version, &record.Data); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan record: %v", err)
	}

	return record, nil
}

func (r *SQLiteRepository) Store(ctx context.Context, key uuid.UUID, record *Record) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if record.Version == 0 {
		q := `
		INSERT INTO records (record_key, version, data) VALUES (?, 1, ?)
		ON CONFLICT (record_key) DO NOTHING;
		`
		res, err = tx.ExecContext(ctx, q, key.String(), record.Data)
	} else {
		q := `
		UPDATE records SET version = version + 1, data = ?
		WHERE record_key = ? AND version = ?;
		`
		res, err = tx.ExecContext(ctx, q, record.Data, key.String(), record.Version)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write record: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %v", err)
	}
	if n == 0 {
		var actual uint64
		q := `
		SELECT version FROM records WHERE record_key = ?;
		`
		if err := tx.QueryRowContext(ctx, q, key.String()).Scan(&actual); err != nil && err != sql.ErrNoRows {
			return 0, fmt.Errorf("failed to scan record version: %v", err)
		}
		return 0, &ErrConflict{Key: key, Expected: record.Version, Actual: actual}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return record.Version + 1, nil
}
