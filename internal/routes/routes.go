// Package routes is a small routing showcase: query defaults, typed path
// segments, JSON bodies and one path answering several methods.
package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/web"
)

const (
	// path segment patterns mirroring Flask's int and float converters
	intSegment   = `[0-9]+`
	floatSegment = `[0-9]+\.[0-9]+`

	defaultName = "Guest"
	defaultAge  = "unknown"

	errNoData = "No data provided"
)

// Router builds the mux with every example route.
func Router(log *zap.Logger) *mux.Router {
	if log == nil {
		log = zap.NewNop()
	}
	h := &handlers{log: log}

	r := mux.NewRouter()
	r.HandleFunc("/", h.home).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/get_example", h.getExample).Methods(http.MethodGet)
	api.HandleFunc("/query_example", h.queryExample).Methods(http.MethodGet)
	api.HandleFunc("/multi_query_example", h.multiQueryExample).Methods(http.MethodGet)
	api.HandleFunc("/default_query_example", h.multiQueryExample).Methods(http.MethodGet)
	api.HandleFunc("/url_example/{name}/{age:"+intSegment+"}", h.urlExample).Methods(http.MethodGet)
	api.HandleFunc("/other_url_example/{ids:"+intSegment+"}/{score:"+floatSegment+"}", h.otherURLExample).Methods(http.MethodGet)
	api.HandleFunc("/post_example", h.bodyExample("Hello, %s! You are %s years old.")).Methods(http.MethodPost)
	api.HandleFunc("/put_example", h.bodyExample("Updated: Hello, %s! You are %s years old.")).Methods(http.MethodPut)
	api.HandleFunc("/delete_example", h.bodyExample("Deleted: Hello, %s! You were %s years old.")).Methods(http.MethodDelete)
	api.HandleFunc("/patch_example", h.bodyExample("Patched: Hello, %s! You are %s years old.")).Methods(http.MethodPatch)
	api.HandleFunc("/dynamic_example/{ids:"+intSegment+"}", h.dynamicExample).
		Methods(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}

// Handler is Router wrapped in the shared middleware.
func Handler(log *zap.Logger) http.Handler {
	return web.Chain(Router(log), log)
}

type handlers struct {
	log *zap.Logger
}

func message(w http.ResponseWriter, format string, args ...any) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf(format, args...)})
}

func queryOr(r *http.Request, key, def string) string {
	q := r.URL.Query()
	if !q.Has(key) {
		return def
	}
	return q.Get(key)
}

func (h *handlers) home(w http.ResponseWriter, _ *http.Request) {
	web.WriteText(w, http.StatusOK, "Welcome to the Flask app!")
}

func (h *handlers) getExample(w http.ResponseWriter, _ *http.Request) {
	message(w, "This is a GET response")
}

func (h *handlers) queryExample(w http.ResponseWriter, r *http.Request) {
	message(w, "Hello, %s!", queryOr(r, "name", defaultName))
}

func (h *handlers) multiQueryExample(w http.ResponseWriter, r *http.Request) {
	message(w, "Hello, %s! You are %s years old.",
		queryOr(r, "name", defaultName), queryOr(r, "age", defaultAge))
}

// pathInt reads an intSegment variable. Integers are unbounded and leading
// zeros are dropped, so "007" is 7.
func pathInt(r *http.Request, key string) (*big.Int, bool) {
	return new(big.Int).SetString(mux.Vars(r)[key], 10)
}

// pathFloat reads a floatSegment variable. Values past the float64 range
// become infinities rather than failing.
func pathFloat(r *http.Request, key string) (float64, bool) {
	f, err := strconv.ParseFloat(mux.Vars(r)[key], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func (h *handlers) urlExample(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	age, ok := pathInt(r, "age")
	if !ok {
		web.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	h.log.Debug("url params", zap.String("name", name), zap.Stringer("age", age))
	message(w, "Hello, %s! You are %s years old.", name, age)
}

func (h *handlers) otherURLExample(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathInt(r, "ids")
	if !ok {
		web.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	score, ok := pathFloat(r, "score")
	if !ok {
		web.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	message(w, "ID: %s, Score: %s", ids, FormatFloat(score))
}

// bodyExample answers with format filled from the JSON body's name and age.
func (h *handlers) bodyExample(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data any
		if err := web.DecodeJSON(r, &data); err != nil || !truthy(data) {
			web.WriteError(w, http.StatusBadRequest, errNoData)
			return
		}
		obj, ok := data.(map[string]any)
		if !ok {
			web.WriteError(w, http.StatusBadRequest, errNoData)
			return
		}
		message(w, format, field(obj, "name", defaultName), field(obj, "age", defaultAge))
	}
}

func (h *handlers) dynamicExample(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathInt(r, "ids")
	if !ok {
		web.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		message(w, "%s request for ID: %s", r.Method, ids)
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		data, err := compactBody(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		message(w, "%s request for ID: %s, Data: %s", r.Method, ids, data)
	default:
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// compactBody returns the body as compact JSON, or "null" when empty.
func compactBody(r *http.Request) (string, error) {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// truthy follows Python's notion of an empty payload.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	}
	return true
}

func field(obj map[string]any, key, def string) string {
	v, ok := obj[key]
	if !ok {
		return def
	}
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "True"
		}
		return "False"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// FormatFloat prints f the way Python's str(float) does for everyday
// values: integral floats keep a trailing ".0".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e16:
		return strconv.FormatFloat(f, 'f', 1, 64)
	case math.Abs(f) >= 1e16 || math.Abs(f) < 1e-4:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
