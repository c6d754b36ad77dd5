// Package hello holds the packaging demos: a greeting, a one-route server
// and a random quote fetcher.
package hello

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/web"
)

const (
	DefaultName = "World"

	RootMessage   = "Hello from Flask!"
	PoetryMessage = "Hello, Poetry & Flask!"
)

func Greeting(name string) string {
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf("Hello, %s from Click + Poetry!", name)
}

// Router serves the greeting pages.
func Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", text(RootMessage)).Methods(http.MethodGet)
	r.HandleFunc("/poetry", text(PoetryMessage)).Methods(http.MethodGet)
	return r
}

func Handler(log *zap.Logger) http.Handler {
	return web.Chain(Router(), log)
}

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteText(w, http.StatusOK, body)
	}
}
