// Package gormstore keeps todos in SQLite through gorm.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/idilsaglam/webtutorials/internal/logging"
	"github.com/idilsaglam/webtutorials/internal/model"
	"github.com/idilsaglam/webtutorials/internal/todo"
)

type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn and migrates the todos table.
// With verbose set, SQL statements go to log.
func Open(dsn string, log *zap.Logger, verbose bool) (*Store, error) {
	gl := logger.Discard
	if verbose && log != nil {
		gl = logger.New(logging.StdLog(log, "gorm"), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	// SQLite allows one writer; this also keeps ":memory:" on a single database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Todo{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate todos: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Create(ctx context.Context, task string) (model.Todo, error) {
	t := model.Todo{Task: task}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]model.Todo, error) {
	var out []model.Todo
	if err := s.db.WithContext(ctx).Order("tid").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, tid int64) (model.Todo, error) {
	var t model.Todo
	err := s.db.WithContext(ctx).First(&t, tid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Todo{}, todo.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("get todo %d: %w", tid, err)
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, t model.Todo) (model.Todo, error) {
	// a map so that Status=false is written
	res := s.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("tid = ?", t.TID).
		Updates(map[string]any{"task": t.Task, "status": t.Status})
	if res.Error != nil {
		return model.Todo{}, fmt.Errorf("update todo %d: %w", t.TID, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Todo{}, todo.ErrNotFound
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, tid int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Todo{}, tid)
	if res.Error != nil {
		return fmt.Errorf("delete todo %d: %w", tid, res.Error)
	}
	if res.RowsAffected == 0 {
		return todo.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Todo{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all todos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
