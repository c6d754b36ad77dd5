package hello

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello, Jeetendra from Click + Poetry!", Greeting("Jeetendra"))
	assert.Equal(t, "Hello, World from Click + Poetry!", Greeting(""))
}

func TestServer(t *testing.T) {
	h := Handler(zap.NewNop())
	for path, want := range map[string]string{
		"/":       RootMessage,
		"/poetry": PoetryMessage,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, want, rec.Body.String(), path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRandomQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":7,"quote":"Stay hungry, stay foolish.","author":"Steve Jobs"}`)
	}))
	defer srv.Close()

	q, err := NewQuoteClient(srv.URL, srv.Client()).Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, `"Stay hungry, stay foolish." - By: Steve Jobs`, q.String())
}

func TestRandomQuoteErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		},
		"garbage": func(w http.ResponseWriter, _ *http.Request) {
			io.WriteString(w, "<html>")
		},
		"empty": func(w http.ResponseWriter, _ *http.Request) {
			io.WriteString(w, `{}`)
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			_, err := NewQuoteClient(srv.URL, srv.Client()).Random(context.Background())
			assert.Error(t, err)
		})
	}
}
