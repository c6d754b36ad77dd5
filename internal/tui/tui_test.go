package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/webtutorials/internal/model"
)

type fakeAPI struct {
	next  int64
	items []model.Todo
	fail  error
}

func (f *fakeAPI) List(context.Context) ([]model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]model.Todo(nil), f.items...), nil
}

func (f *fakeAPI) Create(_ context.Context, task string) (model.Todo, error) {
	f.next++
	t := model.Todo{TID: f.next, Task: task}
	f.items = append(f.items, t)
	return t, nil
}

func (f *fakeAPI) Update(_ context.Context, tid int64, task string) (model.Todo, error) {
	for i := range f.items {
		if f.items[i].TID == tid {
			f.items[i].Task, f.items[i].Status = task, false
			return f.items[i], nil
		}
	}
	return model.Todo{}, errors.New("missing")
}

func (f *fakeAPI) SetStatus(_ context.Context, tid int64, done bool) (model.Todo, error) {
	for i := range f.items {
		if f.items[i].TID == tid {
			f.items[i].Status = done
			return f.items[i], nil
		}
	}
	return model.Todo{}, errors.New("missing")
}

func (f *fakeAPI) Delete(_ context.Context, tid int64) (string, error) {
	for i := range f.items {
		if f.items[i].TID == tid {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return "Todo deleted successfully", nil
		}
	}
	return "", errors.New("missing")
}

func seeded(tasks ...string) *fakeAPI {
	f := &fakeAPI{}
	for _, t := range tasks {
		_, _ = f.Create(context.Background(), t)
	}
	return f
}

// press feeds msg to m without running the returned command.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// step feeds msg to m, runs the API command it returns and applies the result.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case loadedMsg, errMsg:
		next, _ = m.Update(out)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func loaded(t *testing.T, api API) Model {
	t.Helper()
	m := New(context.Background(), api)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestInitLoadsTodos(t *testing.T) {
	m := loaded(t, seeded("one", "two"))
	require.Len(t, m.Items(), 2)
	assert.Contains(t, m.list.Title, "Total")
}

func TestToggleSelected(t *testing.T) {
	api := seeded("one", "two")
	m := loaded(t, api)

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, api.items[0].Status)
	assert.True(t, m.Items()[0].Status)
	assert.Equal(t, "toggled", m.status)
}

func TestDeleteAndUndo(t *testing.T) {
	api := seeded("one", "two")
	api.items[0].Status = true
	m := loaded(t, api)

	m = step(t, m, runes("d"))
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "two", m.Items()[0].Task)

	m = step(t, m, runes("u"))
	require.Len(t, m.Items(), 2)
	restored := m.Items()[1]
	assert.Equal(t, "one", restored.Task)
	assert.True(t, restored.Status, "done flag comes back with the task")

	// nothing left to undo
	before := len(api.items)
	m = step(t, m, runes("u"))
	assert.Len(t, api.items, before)
	_ = m
}

func TestAddThroughInput(t *testing.T) {
	api := seeded()
	m := loaded(t, api)

	m = press(t, m, runes("a"))
	require.True(t, m.adding)
	m = press(t, m, runes("Buy milk"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.adding)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "Buy milk", m.Items()[0].Task)
}

func TestEditRejectsEmpty(t *testing.T) {
	api := seeded("one")
	m := loaded(t, api)

	m = press(t, m, runes("e"))
	require.True(t, m.editing)
	m.ti.SetValue("   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.editing)
	assert.Error(t, m.err)
	assert.Equal(t, "one", api.items[0].Task)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
}

func TestLoadErrorIsShown(t *testing.T) {
	api := seeded("one")
	api.fail = errors.New("connection refused")
	m := loaded(t, api)

	assert.EqualError(t, m.err, "connection refused")
	assert.Contains(t, m.View(), "connection refused")
}
