package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/idilsaglam/webtutorials/internal/model"
	"github.com/idilsaglam/webtutorials/internal/todo"
)

// JSON-backed storage. Single file, human-readable, portable.
// The whole list is rewritten on every change; a mutex serialises access
// within the process.

const DefaultFileName = "todos.json"

type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store for path. An empty path means todos.json in the
// working directory. The file is created lazily on first write.
func Open(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

func (s *Store) load() ([]model.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

func (s *Store) save(items []model.Todo) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func indexOf(items []model.Todo, tid int64) int {
	for i, it := range items {
		if it.TID == tid {
			return i
		}
	}
	return -1
}

func (s *Store) Create(_ context.Context, task string) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return model.Todo{}, err
	}
	// same rule as a SQLite rowid: one past the largest id in use
	var next int64 = 1
	for _, it := range items {
		if it.TID >= next {
			next = it.TID + 1
		}
	}
	t := model.Todo{TID: next, Task: task}
	if err := s.save(append(items, t)); err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func (s *Store) List(context.Context) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Get(_ context.Context, tid int64) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return model.Todo{}, err
	}
	i := indexOf(items, tid)
	if i < 0 {
		return model.Todo{}, todo.ErrNotFound
	}
	return items[i], nil
}

func (s *Store) Update(_ context.Context, t model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return model.Todo{}, err
	}
	i := indexOf(items, t.TID)
	if i < 0 {
		return model.Todo{}, todo.ErrNotFound
	}
	items[i] = t
	if err := s.save(items); err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func (s *Store) Delete(_ context.Context, tid int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(items, tid)
	if i < 0 {
		return todo.ErrNotFound
	}
	return s.save(append(items[:i], items[i+1:]...))
}

func (s *Store) DeleteAll(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return 0, err
	}
	if err := s.save([]model.Todo{}); err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (s *Store) Close() error { return nil }
