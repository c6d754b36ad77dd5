package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
	"github.com/idilsaglam/webtutorials/internal/routes"
	"github.com/idilsaglam/webtutorials/internal/store/jsonstore"
	"github.com/idilsaglam/webtutorials/internal/todo"
	"github.com/idilsaglam/webtutorials/internal/todo/api"
)

// execute runs the root command with a config path that does not exist, so
// only env and defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--theme", "mono"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGreet(t *testing.T) {
	out, err := execute(t, "greet")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World from Click + Poetry!\n", out)

	out, err = execute(t, "greet", "--name", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada from Click + Poetry!\n", out)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"json", "xml", "flights"} {
		_, err := execute(t, "convert", sub, "--dir", dir)
		require.NoError(t, err, sub)
	}
	for _, name := range []string{"person_data.json", "person_data.xml", "flight_search.xml", "flight_search.json"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestLambdaInvoke(t *testing.T) {
	event := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(event, []byte(`{"httpMethod":"GET","path":"/greet","queryStringParameters":{"name":"xyz"}}`), 0o644))

	out, err := execute(t, "lambda", "invoke", "path", "--event", event)
	require.NoError(t, err)
	assert.Contains(t, out, `"statusCode": 200`)
	assert.Contains(t, out, `Hello, xyz`)

	_, err = execute(t, "lambda", "invoke", "nope")
	assert.ErrorContains(t, err, `unknown handler "nope"`)

	out, err = execute(t, "lambda", "list")
	require.NoError(t, err)
	assert.Equal(t, "greet\nitems\nmethod\npath\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tutorials.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8182", cfg.Todo.Addr)
	assert.Equal(t, "MyTable", cfg.Items.TableName)

	_, err = execute(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestRoutesCall(t *testing.T) {
	srv := httptest.NewServer(routes.Handler(zap.NewNop()))
	defer srv.Close()

	out, err := execute(t, "routes", "call", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the Flask app!")
	assert.Contains(t, out, `{"message":"Hello, Sameer!"}`)
}

func TestTodoCommands(t *testing.T) {
	repo, err := jsonstore.Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	srv := httptest.NewServer(api.New(todo.NewService(repo, nil), nil).Handler())
	defer srv.Close()

	out, err := execute(t, "todo", "--url", srv.URL, "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "added #1")

	out, err = execute(t, "todo", "--url", srv.URL, "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "toggled")

	out, err = execute(t, "todo", "--url", srv.URL, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")

	_, err = execute(t, "todo", "--url", srv.URL, "rm", "42")
	assert.Error(t, err)

	_, err = execute(t, "todo", "--url", srv.URL, "rm", "abc")
	assert.ErrorContains(t, err, `invalid id "abc"`)
}

func TestServeRejectsUnknownServer(t *testing.T) {
	_, err := execute(t, "serve", "--skip", "ftp")
	assert.ErrorContains(t, err, `unknown server "ftp"`)
}
