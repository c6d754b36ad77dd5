package ui

import (
	"fmt"

	"github.com/idilsaglam/webtutorials/internal/model"
)

// TodoHeader is the counts line shown above a todo list.
func TodoHeader(items []model.Todo) []string {
	d, p := model.Stats(items)
	t := Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymUnchecked), p,
		C(t.Accent, "Total"), len(items),
	)
	return []string{header, C(t.Muted, ProgressBar(d, d+p, 28))}
}

// FlatLines renders one line per todo, prefixed with its tid.
func FlatLines(items []model.Todo) []string {
	t := Current()
	if len(items) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box, color := t.BoxUnchecked, t.Muted
		if it.Status {
			box, color = t.BoxChecked, t.Success
		}
		task := []rune(it.Task)
		if len(task) > 80 {
			task = append(task[:77], []rune("...")...)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			Dim(fmt.Sprintf("%3d.", it.TID)), C(color, box), string(task)))
	}
	return out
}

// GroupLines renders pending todos first, then done ones.
func GroupLines(items []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range items {
		if it.Status {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, FlatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, FlatLines(done)...)
	}
	return lines
}
