// Package sqlxstore keeps todos in SQL through sqlx. SQLite (pure Go driver)
// is the default; postgres:// DSNs go through pgx.
package sqlxstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/idilsaglam/webtutorials/internal/model"
	"github.com/idilsaglam/webtutorials/internal/todo"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS todos (
	tid    INTEGER PRIMARY KEY,
	task   TEXT NOT NULL,
	status BOOLEAN NOT NULL DEFAULT FALSE
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS todos (
	tid    BIGSERIAL PRIMARY KEY,
	task   TEXT NOT NULL,
	status BOOLEAN NOT NULL DEFAULT FALSE
)`

type Store struct {
	db *sqlx.DB
}

// Driver picks the database/sql driver name for dsn.
func Driver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Open connects and creates the todos table if needed.
func Open(ctx context.Context, dsn string) (*Store, error) {
	driver := Driver(dsn)
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	schema := postgresSchema
	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
		schema = sqliteSchema
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Create(ctx context.Context, task string) (model.Todo, error) {
	var t model.Todo
	q := s.db.Rebind(`INSERT INTO todos (task, status) VALUES (?, ?) RETURNING tid, task, status`)
	if err := s.db.GetContext(ctx, &t, q, task, false); err != nil {
		return model.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]model.Todo, error) {
	out := []model.Todo{}
	if err := s.db.SelectContext(ctx, &out, `SELECT tid, task, status FROM todos ORDER BY tid`); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, tid int64) (model.Todo, error) {
	var t model.Todo
	q := s.db.Rebind(`SELECT tid, task, status FROM todos WHERE tid = ?`)
	err := s.db.GetContext(ctx, &t, q, tid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, todo.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("get todo %d: %w", tid, err)
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, t model.Todo) (model.Todo, error) {
	q := s.db.Rebind(`UPDATE todos SET task = ?, status = ? WHERE tid = ?`)
	res, err := s.db.ExecContext(ctx, q, t.Task, t.Status, t.TID)
	if err != nil {
		return model.Todo{}, fmt.Errorf("update todo %d: %w", t.TID, err)
	}
	if err := requireRow(res); err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, tid int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM todos WHERE tid = ?`), tid)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", tid, err)
	}
	return requireRow(res)
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos`)
	if err != nil {
		return 0, fmt.Errorf("delete all todos: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error { return s.db.Close() }

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return todo.ErrNotFound
	}
	return nil
}
