// Package api exposes the todo service over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/todo"
	"github.com/idilsaglam/webtutorials/internal/web"
)

const (
	msgWelcome = "Welcome to the simple Todo API"
	msgDeleted = "Todo deleted successfully"
	msgReset   = "All todos have been deleted"
	msgMissing = "Todo not found"
)

// validationError is reported as 422 with its message as the detail.
type validationError string

func (e validationError) Error() string { return string(e) }

func invalid(format string, args ...any) error {
	return validationError(fmt.Sprintf(format, args...))
}

type API struct {
	svc *todo.Service
	log *zap.Logger
}

func New(svc *todo.Service, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{svc: svc, log: log}
}

// Init registers the routes on r.
func (a *API) Init(r *mux.Router) {
	r.HandleFunc("/", a.root).Methods(http.MethodGet)
	r.HandleFunc("/todos", a.create).Methods(http.MethodPost)
	r.HandleFunc("/todos", a.list).Methods(http.MethodGet)
	r.HandleFunc("/todos/{tid}", a.get).Methods(http.MethodGet)
	r.HandleFunc("/todos/{tid}", a.update).Methods(http.MethodPut)
	r.HandleFunc("/todos/{tid}", a.patch).Methods(http.MethodPatch)
	r.HandleFunc("/todos/{tid}", a.delete).Methods(http.MethodDelete)
	r.HandleFunc("/reset/todos", a.reset).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

// Handler returns the full middleware-wrapped router.
func (a *API) Handler() http.Handler {
	r := mux.NewRouter()
	a.Init(r)
	return web.Chain(r, a.log)
}

func (a *API) root(w http.ResponseWriter, _ *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": msgWelcome})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	in, err := readInput(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	task, err := in.requireTask()
	if err != nil {
		a.writeErr(w, err)
		return
	}
	t, err := a.svc.Create(r.Context(), task)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.List(r.Context())
	if err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, items)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	tid, err := pathTID(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	t, err := a.svc.Get(r.Context(), tid)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	tid, err := pathTID(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	in, err := readInput(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	task, err := in.requireTask()
	if err != nil {
		a.writeErr(w, err)
		return
	}
	t, err := a.svc.Update(r.Context(), tid, task)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (a *API) patch(w http.ResponseWriter, r *http.Request) {
	tid, err := pathTID(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	in, err := readInput(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	done, err := in.requireDone()
	if err != nil {
		a.writeErr(w, err)
		return
	}
	t, err := a.svc.SetStatus(r.Context(), tid, done)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	tid, err := pathTID(r)
	if err != nil {
		a.writeErr(w, err)
		return
	}
	if err := a.svc.Delete(r.Context(), tid); err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}

func (a *API) reset(w http.ResponseWriter, r *http.Request) {
	if _, err := a.svc.Reset(r.Context()); err != nil {
		a.writeErr(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": msgReset})
}

// writeErr maps service errors onto status codes.
func (a *API) writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		web.WriteDetail(w, http.StatusNotFound, msgMissing)
	case errors.Is(err, todo.ErrInvalidTask):
		web.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, new(validationError)):
		web.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.log.Error("todo request failed", zap.Error(err))
		web.WriteDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathTID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["tid"]
	tid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("tid must be an integer, got %q", raw)
	}
	return tid, nil
}

// ParseBool accepts the spellings a query-string boolean usually comes in.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	}
	return false, invalid("is_done must be a boolean, got %q", s)
}
