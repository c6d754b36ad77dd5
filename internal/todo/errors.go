package todo

import "errors"

var (
	ErrNotFound    = errors.New("todo not found")
	ErrInvalidTask = errors.New("task must not be empty")
)
