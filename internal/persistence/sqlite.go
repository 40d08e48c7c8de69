package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteAdapter persists snapshots as JSON blobs in a single SQLite table,
// one row per collection slot. The whole snapshot is rewritten inside a
// transaction on every Save.
type SQLiteAdapter struct {
	db   *sql.DB
	path string
}

// NewSQLiteAdapter opens (or creates) the database file and its state table.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	if path == "" {
		path = "campus.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		slot TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLiteAdapter{db: db, path: path}, nil
}

// Load reads both slots. Missing rows mean no snapshot has been written yet.
func (a *SQLiteAdapter) Load(ctx context.Context) (Snapshot, bool, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT slot, payload FROM state`)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	payloads := map[string][]byte{}
	for rows.Next() {
		var slot string
		var payload []byte
		if err := rows.Scan(&slot, &payload); err != nil {
			return Snapshot{}, false, fmt.Errorf("scan: %w", err)
		}
		payloads[slot] = payload
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, false, fmt.Errorf("iterate state: %w", err)
	}

	studentsRaw, okStudents := payloads[studentsSlot]
	coursesRaw, okCourses := payloads[coursesSlot]
	if !okStudents || !okCourses {
		return Snapshot{}, false, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(studentsRaw, &snap.Students); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode %s: %w", studentsSlot, err)
	}
	if err := json.Unmarshal(coursesRaw, &snap.Courses); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode %s: %w", coursesSlot, err)
	}
	return snap, true, nil
}

// Save upserts both slots inside one transaction.
func (a *SQLiteAdapter) Save(ctx context.Context, snap Snapshot) (retErr error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	slots := []struct {
		name string
		data interface{}
	}{
		{studentsSlot, snap.Students},
		{coursesSlot, snap.Courses},
	}
	for _, slot := range slots {
		payload, err := json.Marshal(slot.data)
		if err != nil {
			retErr = fmt.Errorf("encode %s: %w", slot.name, err)
			return retErr
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO state(slot,payload) VALUES(?,?) ON CONFLICT(slot) DO UPDATE SET payload=excluded.payload`,
			slot.name, payload); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", slot.name, err)
			return retErr
		}
	}
	return tx.Commit()
}

// Reset deletes every slot.
func (a *SQLiteAdapter) Reset(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM state`); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (a *SQLiteAdapter) Close() error { return a.db.Close() }

// Path returns the configured database path.
func (a *SQLiteAdapter) Path() string { return a.path }
