package lib

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const historyTableSQL = `CREATE TABLE IF NOT EXISTS midget_history (
	id SERIAL PRIMARY KEY,
	at TIMESTAMP WITH TIME ZONE NOT NULL,
	source TEXT NOT NULL,
	result TEXT NOT NULL,
	error TEXT NOT NULL
)`

// Entry is one evaluated input. Exactly one of Result and Error is set.
type Entry struct {
	At     time.Time
	Source string
	Result string
	Error  string
}

// NewEntry records the outcome of evaluating source.
func NewEntry(source string, value RuntimeValue, err error) Entry {
	entry := Entry{At: time.Now(), Source: source}
	if err != nil {
		entry.Error = err.Error()
	} else if value != nil {
		entry.Result = value.String()
	}
	return entry
}

// History stores evaluated inputs in Postgres.
type History struct {
	db *sql.DB
}

func OpenHistory(ctx context.Context, connectionString string) (*History, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	err = requireHistoryTable(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &History{db: db}, nil
}

func requireHistoryTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, historyTableSQL)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

func (h *History) Record(ctx context.Context, entry Entry) error {
	_, err := h.db.ExecContext(
		ctx,
		"INSERT INTO midget_history (at, source, result, error) VALUES ($1, $2, $3, $4)",
		entry.At,
		entry.Source,
		entry.Result,
		entry.Error)
	if err != nil {
		return fmt.Errorf("recording history: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := h.db.QueryContext(
		ctx,
		"SELECT at, source, result, error FROM midget_history ORDER BY id DESC LIMIT $1",
		n)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry := Entry{}
		err = rows.Scan(&entry.At, &entry.Source, &entry.Result, &entry.Error)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
