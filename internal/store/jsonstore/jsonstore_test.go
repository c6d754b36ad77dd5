package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/idilsaglam/webtutorials/internal/todo"
	"github.com/idilsaglam/webtutorials/internal/todo/todotest"
)

func TestJSONStore(t *testing.T) {
	suite.Run(t, &todotest.RepositorySuite{
		NewRepo: func(t *testing.T) todo.Repository {
			s, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
			require.NoError(t, err)
			return s
		},
	})
}

func TestFileIsHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.Create(context.Background(), "Buy milk")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"tid":1,"task":"Buy milk","status":false}]`, string(b))
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.List(context.Background())
	assert.ErrorContains(t, err, "json unmarshal")
}
