package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/idilsaglam/webtutorials/internal/web"
)

// input carries task/is_done from the query string, falling back to a JSON
// body for clients that send one.
type input struct {
	task    *string
	done    *string
	doneVal *bool
}

type body struct {
	Task   *string `json:"task"`
	IsDone any     `json:"is_done"`
}

func readInput(r *http.Request) (input, error) {
	var in input
	q := r.URL.Query()
	if q.Has("task") {
		v := q.Get("task")
		in.task = &v
	}
	if q.Has("is_done") {
		v := q.Get("is_done")
		in.done = &v
	}
	if in.task != nil || in.done != nil || r.Body == nil || r.ContentLength == 0 {
		return in, nil
	}

	var b body
	if err := web.DecodeJSON(r, &b); err != nil {
		if errors.Is(err, web.ErrEmptyBody) {
			return in, nil
		}
		return input{}, invalid("%v", err)
	}
	in.task = b.Task
	switch v := b.IsDone.(type) {
	case nil:
	case bool:
		in.doneVal = &v
	case string:
		in.done = &v
	default:
		s := fmt.Sprint(v)
		in.done = &s
	}
	return in, nil
}

func (in input) requireTask() (string, error) {
	if in.task == nil {
		return "", invalid("task is required")
	}
	return *in.task, nil
}

func (in input) requireDone() (bool, error) {
	if in.doneVal != nil {
		return *in.doneVal, nil
	}
	if in.done == nil {
		return false, invalid("is_done is required")
	}
	return ParseBool(*in.done)
}
