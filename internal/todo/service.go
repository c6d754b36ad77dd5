// Package todo implements the todo list operations on top of a Repository.
package todo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/model"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

func validateTask(task string) (string, error) {
	if strings.TrimSpace(task) == "" {
		return "", ErrInvalidTask
	}
	return task, nil
}

func (s *Service) Create(ctx context.Context, task string) (model.Todo, error) {
	task, err := validateTask(task)
	if err != nil {
		return model.Todo{}, err
	}
	t, err := s.repo.Create(ctx, task)
	if err != nil {
		return model.Todo{}, err
	}
	s.log.Debug("todo created", zap.Int64("tid", t.TID))
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

// Get is the lookup-or-not-found helper every single-todo route goes through.
func (s *Service) Get(ctx context.Context, tid int64) (model.Todo, error) {
	return s.repo.Get(ctx, tid)
}

// Update replaces the task text. Editing a todo reopens it.
func (s *Service) Update(ctx context.Context, tid int64, task string) (model.Todo, error) {
	task, err := validateTask(task)
	if err != nil {
		return model.Todo{}, err
	}
	t, err := s.Get(ctx, tid)
	if err != nil {
		return model.Todo{}, err
	}
	t.Task = task
	t.Status = false
	return s.repo.Update(ctx, t)
}

// SetStatus changes only the done flag.
func (s *Service) SetStatus(ctx context.Context, tid int64, done bool) (model.Todo, error) {
	t, err := s.Get(ctx, tid)
	if err != nil {
		return model.Todo{}, err
	}
	t.Status = done
	return s.repo.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, tid int64) error {
	if _, err := s.Get(ctx, tid); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tid); err != nil {
		return err
	}
	s.log.Debug("todo deleted", zap.Int64("tid", tid))
	return nil
}

// Reset removes every todo and reports how many were deleted.
func (s *Service) Reset(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info("todos reset", zap.Int64("deleted", n))
	return n, nil
}
