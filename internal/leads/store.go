// Package leads stores demo requests and newsletter signups.
package leads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/warehousepro/landing/internal/demo"
)

var ErrNotFound = errors.New("lead not found")

// Lead is a submitted demo request.
type Lead struct {
	ID        string
	Request   demo.Request
	CreatedAt time.Time
}

// Store keeps leads in sqlite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite
	s := &Store{db: db, now: func() time.Time { return time.Now().UTC().Truncate(time.Second) }}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS demo_requests (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			company TEXT NOT NULL,
			phone TEXT NOT NULL,
			current_erp TEXT NOT NULL DEFAULT '',
			warehouse_size TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS demo_request_challenges (
			request_id TEXT NOT NULL REFERENCES demo_requests(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			challenge TEXT NOT NULL,
			PRIMARY KEY (request_id, challenge)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_demo_requests_created_at ON demo_requests(created_at)`,
		`CREATE TABLE IF NOT EXISTS subscribers (
			email TEXT PRIMARY KEY COLLATE NOCASE,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// SaveDemoRequest stores req under a new id. Repeated challenges are stored
// once.
func (s *Store) SaveDemoRequest(ctx context.Context, req demo.Request) (*Lead, error) {
	req.Normalize()
	lead := &Lead{ID: uuid.NewString(), Request: req, CreatedAt: s.now()}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO demo_requests (id, name, email, company, phone, current_erp, warehouse_size, message, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, lead.ID, req.Name, req.Email, req.Company, req.Phone, req.CurrentERP, req.WarehouseSize, req.Message, lead.CreatedAt)
		if err != nil {
			return err
		}
		for i, c := range req.Challenges {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO demo_request_challenges (request_id, position, challenge) VALUES (?, ?, ?)
			`, lead.ID, i, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save demo request: %w", err)
	}
	return lead, nil
}

func (s *Store) GetDemoRequest(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	r := &l.Request
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, company, phone, current_erp, warehouse_size, message, created_at
		FROM demo_requests WHERE id = ?
	`, id).Scan(&l.ID, &r.Name, &r.Email, &r.Company, &r.Phone, &r.CurrentERP, &r.WarehouseSize, &r.Message, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get demo request %s: %w", id, err)
	}
	if r.Challenges, err = s.challenges(ctx, id); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListDemoRequests returns the most recent requests first.
func (s *Store) ListDemoRequests(ctx context.Context, limit int) ([]*Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, company, phone, current_erp, warehouse_size, message, created_at
		FROM demo_requests
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list demo requests: %w", err)
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		var l Lead
		r := &l.Request
		if err := rows.Scan(&l.ID, &r.Name, &r.Email, &r.Company, &r.Phone, &r.CurrentERP, &r.WarehouseSize, &r.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("list demo requests: %w", err)
		}
		leads = append(leads, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list demo requests: %w", err)
	}
	rows.Close()

	for _, l := range leads {
		if l.Request.Challenges, err = s.challenges(ctx, l.ID); err != nil {
			return nil, err
		}
	}
	return leads, nil
}

func (s *Store) challenges(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT challenge FROM demo_request_challenges WHERE request_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("challenges of %s: %w", id, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Subscribe adds email to the newsletter list. created is false when the
// address (compared case-insensitively) was already subscribed.
func (s *Store) Subscribe(ctx context.Context, email string) (created bool, err error) {
	email = strings.TrimSpace(email)
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO subscribers (email, created_at) VALUES (?, ?)
	`, email, s.now())
	if err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}
	return n == 1, nil
}

func (s *Store) CountSubscribers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
