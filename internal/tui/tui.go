// Package tui is an interactive terminal list over the todo API.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/webtutorials/internal/model"
)

// API is the subset of the todo client the list needs.
type API interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, task string) (model.Todo, error)
	Update(ctx context.Context, tid int64, task string) (model.Todo, error)
	SetStatus(ctx context.Context, tid int64, done bool) (model.Todo, error)
	Delete(ctx context.Context, tid int64) (string, error)
}

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Task }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Task }

// itemDelegate renders single-line rows.
type itemDelegate struct{}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Task
	if it.todo.Status {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, mutedStyle.Render(fmt.Sprintf("%3d", it.todo.TID)), box, text)
}

// loadedMsg carries a fresh list from the server.
type loadedMsg struct {
	items []model.Todo
	note  string
}

type errMsg struct{ err error }

type Model struct {
	api  API
	ctx  context.Context
	list list.Model

	width, height int

	// inline add / edit share one text input
	adding  bool
	editing bool
	editTID int64
	ti      textinput.Model

	// single-level undo of the last delete
	undo *model.Todo

	status string
	err    error
}

// New builds the list model. Call Init to load the todos.
func New(ctx context.Context, api API) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	binds := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{api: api, ctx: ctx, list: l, ti: ti, width: 80, height: 24}
}

// Run starts the program on the alternate screen.
func Run(ctx context.Context, api API) error {
	_, err := tea.NewProgram(New(ctx, api), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.reload("") }

// Items returns the todos currently shown.
func (m Model) Items() []model.Todo {
	out := make([]model.Todo, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	return out
}

func (m Model) selected() (model.Todo, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	return li.todo, ok
}

func (m Model) reload(note string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.api.List(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items: items, note: note}
	}
}

// mutate runs op against the API and then reloads the list.
func (m Model) mutate(note string, op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := op(m.ctx); err != nil {
			return errMsg{err}
		}
		return m.reload(note)()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case loadedMsg:
		li := make([]list.Item, 0, len(msg.items))
		for _, t := range msg.items {
			li = append(li, listItem{todo: t})
		}
		cmd := m.list.SetItems(li)
		m.list.Title = m.title(msg.items)
		m.status, m.err = msg.note, nil
		return m, cmd
	case errMsg:
		m.err = msg.err
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.reload("refreshed")
		case " ":
			if t, ok := m.selected(); ok {
				return m, m.mutate("toggled", func(ctx context.Context) error {
					_, err := m.api.SetStatus(ctx, t.TID, !t.Status)
					return err
				})
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.undo = &t
				return m, m.mutate("deleted", func(ctx context.Context) error {
					_, err := m.api.Delete(ctx, t.TID)
					return err
				})
			}
			return m, nil
		case "u":
			if m.undo == nil {
				return m, nil
			}
			t := *m.undo
			m.undo = nil
			return m, m.mutate("restored", func(ctx context.Context) error {
				created, err := m.api.Create(ctx, t.Task)
				if err != nil || !t.Status {
					return err
				}
				_, err = m.api.SetStatus(ctx, created.TID, true)
				return err
			})
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New task..."
			m.err = nil
			return m, m.ti.Focus()
		case "e":
			if t, ok := m.selected(); ok {
				m.editing = true
				m.editTID = t.TID
				m.ti.SetValue(t.Task)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit task..."
				m.err = nil
				return m, m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			task := strings.TrimSpace(m.ti.Value())
			if task == "" {
				m.err = fmt.Errorf("task cannot be empty")
				return m, nil
			}
			var cmd tea.Cmd
			if m.adding {
				cmd = m.mutate("added", func(ctx context.Context) error {
					_, err := m.api.Create(ctx, task)
					return err
				})
			} else {
				tid := m.editTID
				cmd = m.mutate("updated", func(ctx context.Context) error {
					_, err := m.api.Update(ctx, tid, task)
					return err
				})
			}
			m.closeInput()
			return m, cmd
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) title(items []model.Todo) string {
	dn, pn := model.Stats(items)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(items),
	)
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight -= 2
	}
	if m.err != nil || m.status != "" {
		listHeight--
	}
	m.list.SetSize(m.width-4, max(listHeight, 3))

	content := m.list.View()
	if m.adding || m.editing {
		head := "Add todo"
		if m.editing {
			head = fmt.Sprintf("Edit todo %d", m.editTID)
		}
		content += "\n" + frameStyle.Render(head+"\n"+m.ti.View())
	}
	switch {
	case m.err != nil:
		content += "\n" + errorStyle.Render("✖ "+m.err.Error())
	case m.status != "":
		content += "\n" + successStyle.Render("✔ "+m.status)
	}
	return frameStyle.Render(content)
}
