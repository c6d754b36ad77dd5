// Package cli implements the todo subcommands on top of the API client.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/webtutorials/internal/todo/client"
	"github.com/idilsaglam/webtutorials/internal/ui"
)

// Todos renders todo API calls for a terminal.
type Todos struct {
	Client *client.Client
	Out    io.Writer
	Err    io.Writer
}

// List prints the todos inside a panel with a progress header.
func (t Todos) List(ctx context.Context, group bool) error {
	items, err := t.Client.List(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	lines := ui.TodoHeader(items)
	lines = append(lines, "")
	if group {
		lines = append(lines, ui.GroupLines(items)...)
	} else {
		lines = append(lines, ui.FlatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `tutorials todo add \"Buy milk\"`"))
	ui.Panel(t.Out, lines)
	return nil
}

func (t Todos) Add(ctx context.Context, task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		return fmt.Errorf("add: empty task")
	}
	created, err := t.Client.Create(ctx, task)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	ui.OK(t.Out, fmt.Sprintf("added #%d", created.TID))
	return nil
}

// Toggle flips the done flag of tid.
func (t Todos) Toggle(ctx context.Context, tid int64) error {
	cur, err := t.Client.Get(ctx, tid)
	if err != nil {
		return t.wrap("done", err)
	}
	if _, err := t.Client.SetStatus(ctx, tid, !cur.Status); err != nil {
		return t.wrap("done", err)
	}
	ui.OK(t.Out, "toggled")
	return nil
}

func (t Todos) Edit(ctx context.Context, tid int64, task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		return fmt.Errorf("edit: empty task")
	}
	if _, err := t.Client.Update(ctx, tid, task); err != nil {
		return t.wrap("edit", err)
	}
	ui.OK(t.Out, "updated")
	return nil
}

func (t Todos) Remove(ctx context.Context, tid int64) error {
	if _, err := t.Client.Delete(ctx, tid); err != nil {
		return t.wrap("rm", err)
	}
	ui.OK(t.Out, "removed")
	return nil
}

func (t Todos) Reset(ctx context.Context) error {
	msg, err := t.Client.Reset(ctx)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	ui.OK(t.Out, msg)
	return nil
}

func (t Todos) wrap(op string, err error) error {
	if client.IsNotFound(err) && t.Err != nil {
		fmt.Fprintln(t.Err, ui.C(ui.Current().Muted, "Hint: run `tutorials todo ls` to see valid ids"))
	}
	return fmt.Errorf("%s: %w", op, err)
}
