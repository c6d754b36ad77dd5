package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/store/jsonstore"
	"github.com/idilsaglam/webtutorials/internal/todo"
	"github.com/idilsaglam/webtutorials/internal/todo/api"
	"github.com/idilsaglam/webtutorials/internal/todo/client"
	"github.com/idilsaglam/webtutorials/internal/ui"
)

func newTodos(t *testing.T) (Todos, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ui.SetColorForcing(false, true)
	t.Cleanup(func() { ui.SetColorForcing(false, false) })

	repo, err := jsonstore.Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	srv := httptest.NewServer(api.New(todo.NewService(repo, nil), zap.NewNop()).Handler())
	t.Cleanup(srv.Close)

	var out, errOut bytes.Buffer
	return Todos{Client: client.New(srv.URL, srv.Client()), Out: &out, Err: &errOut}, &out, &errOut
}

func TestAddToggleList(t *testing.T) {
	ctx := context.Background()
	todos, out, _ := newTodos(t)

	require.NoError(t, todos.Add(ctx, "  Buy milk "))
	require.NoError(t, todos.Add(ctx, "Walk dog"))
	require.NoError(t, todos.Toggle(ctx, 1))
	out.Reset()

	require.NoError(t, todos.List(ctx, true))
	text := out.String()
	assert.Contains(t, text, "Total 2")
	assert.Contains(t, text, "1. ☑ Buy milk")
	assert.Contains(t, text, "2. ☐ Walk dog")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Walk dog")), bytes.Index(out.Bytes(), []byte("Buy milk")),
		"pending group comes first")
}

func TestToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	todos, _, _ := newTodos(t)
	require.NoError(t, todos.Add(ctx, "flip"))
	require.NoError(t, todos.Toggle(ctx, 1))
	require.NoError(t, todos.Toggle(ctx, 1))

	got, err := todos.Client.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.Status)
}

func TestMissingIDPrintsHint(t *testing.T) {
	ctx := context.Background()
	todos, _, errOut := newTodos(t)

	err := todos.Remove(ctx, 9)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.Contains(t, errOut.String(), "todo ls")
}

func TestRejectsEmptyTask(t *testing.T) {
	ctx := context.Background()
	todos, _, _ := newTodos(t)
	assert.Error(t, todos.Add(ctx, "   "))
	assert.Error(t, todos.Edit(ctx, 1, ""))
}
