package client

import (
	"context"
	"fmt"
	"io"
)

// DemoTasks are the todos the walkthrough creates.
var DemoTasks = []string{
	"Buy groceries",
	"Read a book",
	"Workout",
	"Write blog post",
	"Call mom",
}

// RunDemo exercises every endpoint in order: reset, create, list, get,
// update, mark done, delete, list again. Progress is written to w.
func RunDemo(ctx context.Context, c *Client, w io.Writer) error {
	msg, err := c.Reset(ctx)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Fprintln(w, "Reset:", msg)

	ids := make([]int64, 0, len(DemoTasks))
	for _, task := range DemoTasks {
		t, err := c.Create(ctx, task)
		if err != nil {
			return fmt.Errorf("create %q: %w", task, err)
		}
		ids = append(ids, t.TID)
		fmt.Fprintf(w, "Created: %d %s\n", t.TID, t.Task)
	}

	if err := printAll(ctx, c, w, "All todos:"); err != nil {
		return err
	}

	first, err := c.Get(ctx, ids[0])
	if err != nil {
		return fmt.Errorf("get %d: %w", ids[0], err)
	}
	fmt.Fprintf(w, "Todo %d: %s (done=%t)\n", first.TID, first.Task, first.Status)

	updated, err := c.Update(ctx, ids[0], "Buy groceries and snacks")
	if err != nil {
		return fmt.Errorf("update %d: %w", ids[0], err)
	}
	fmt.Fprintf(w, "Updated: %d %s\n", updated.TID, updated.Task)

	done, err := c.SetStatus(ctx, ids[1], true)
	if err != nil {
		return fmt.Errorf("patch %d: %w", ids[1], err)
	}
	fmt.Fprintf(w, "Marked done: %d %s\n", done.TID, done.Task)

	msg, err = c.Delete(ctx, ids[2])
	if err != nil {
		return fmt.Errorf("delete %d: %w", ids[2], err)
	}
	fmt.Fprintf(w, "Deleted %d: %s\n", ids[2], msg)

	return printAll(ctx, c, w, "Todos after changes:")
}

func printAll(ctx context.Context, c *Client, w io.Writer, title string) error {
	all, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	fmt.Fprintln(w, title)
	for _, t := range all {
		mark := " "
		if t.Status {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %d %s\n", mark, t.TID, t.Task)
	}
	return nil
}
