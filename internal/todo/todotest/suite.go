// Package todotest holds the behaviour every todo.Repository must share.
package todotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/idilsaglam/webtutorials/internal/model"
	"github.com/idilsaglam/webtutorials/internal/todo"
)

// RepositorySuite runs against a fresh repository per test.
type RepositorySuite struct {
	suite.Suite
	NewRepo func(t *testing.T) todo.Repository

	repo todo.Repository
	ctx  context.Context
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.NewRepo(s.T())
}

func (s *RepositorySuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *RepositorySuite) create(task string) model.Todo {
	t, err := s.repo.Create(s.ctx, task)
	s.Require().NoError(err)
	return t
}

func (s *RepositorySuite) TestCreateAssignsIDsAndPendingStatus() {
	a := s.create("Buy groceries")
	b := s.create("Read a book")

	s.Positive(a.TID)
	s.Greater(b.TID, a.TID)
	s.Equal("Buy groceries", a.Task)
	s.False(a.Status)
}

// Ids follow the SQLite rowid rule: one past the largest id in use.
func (s *RepositorySuite) TestIDsReuseFreedMaximumAndRestartAfterReset() {
	a := s.create("a")
	b := s.create("b")
	s.EqualValues(1, a.TID)
	s.EqualValues(2, b.TID)

	s.Require().NoError(s.repo.Delete(s.ctx, b.TID))
	c := s.create("c")
	s.EqualValues(2, c.TID)

	_, err := s.repo.DeleteAll(s.ctx)
	s.Require().NoError(err)
	d := s.create("d")
	s.EqualValues(1, d.TID)
}

func (s *RepositorySuite) TestListReturnsInsertionOrder() {
	s.create("one")
	s.create("two")
	s.create("three")

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{"one", "two", "three"}, []string{all[0].Task, all[1].Task, all[2].Task})
}

func (s *RepositorySuite) TestListEmpty() {
	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *RepositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, 999)
	s.ErrorIs(err, todo.ErrNotFound)
}

func (s *RepositorySuite) TestUpdatePersistsAllFields() {
	t := s.create("Workout")
	t.Task = "Workout twice"
	t.Status = true

	_, err := s.repo.Update(s.ctx, t)
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, t.TID)
	s.Require().NoError(err)
	s.Equal(t, got)

	// false must be written too, not skipped as a zero value
	got.Status = false
	_, err = s.repo.Update(s.ctx, got)
	s.Require().NoError(err)
	again, err := s.repo.Get(s.ctx, t.TID)
	s.Require().NoError(err)
	s.False(again.Status)
}

func (s *RepositorySuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, model.Todo{TID: 999, Task: "ghost"})
	s.ErrorIs(err, todo.ErrNotFound)
}

func (s *RepositorySuite) TestDelete() {
	keep := s.create("keep")
	drop := s.create("drop")

	s.Require().NoError(s.repo.Delete(s.ctx, drop.TID))
	_, err := s.repo.Get(s.ctx, drop.TID)
	s.ErrorIs(err, todo.ErrNotFound)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.Todo{keep}, all)

	s.ErrorIs(s.repo.Delete(s.ctx, drop.TID), todo.ErrNotFound)
}

func (s *RepositorySuite) TestDeleteAll() {
	s.create("a")
	s.create("b")

	n, err := s.repo.DeleteAll(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, n)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}
