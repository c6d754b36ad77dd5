package ui

import (
	"fmt"
	"slices"
	"strings"
)

// Theme is the palette and glyph set every renderer reads through Current.
type Theme struct {
	Name string
	// Plain themes never emit escape codes, even on a terminal.
	Plain bool

	Title, Muted, Accent, Success, Error, Pending string

	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymDone, SymUnchecked                  string
	// Status line prefixes for OK, Fail and Warn.
	SymOK, SymFail, SymWarn string
}

var rounded = Theme{
	CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
	H: "─", V: "│",
}

var themes = map[string]Theme{
	"classic": {
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
		SymOK: symCheck, SymFail: symCross, SymWarn: "!",
	},
	"neon": {
		Title: "\033[95m", Muted: fgGray, Accent: "\033[96m",
		Success: "\033[92m", Error: "\033[91m", Pending: "\033[93m",
		BoxUnchecked: "◻", BoxChecked: "◼",
		CornerTL: rounded.CornerTL, CornerTR: rounded.CornerTR,
		CornerBL: rounded.CornerBL, CornerBR: rounded.CornerBR,
		H: rounded.H, V: rounded.V,
		SymDone: "✔", SymUnchecked: "•",
		SymOK: "➜", SymFail: symCross, SymWarn: "⚠",
	},
	// mono is for logs and pipes: ASCII only, no color.
	"mono": {
		Plain:        true,
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymDone: "x", SymUnchecked: "-",
		SymOK: "OK", SymFail: "FAIL", SymWarn: "WARN",
	},
}

var current = withName("classic")

func withName(name string) Theme {
	t := themes[name]
	t.Name = name
	return t
}

// Themes lists the theme names SetTheme accepts.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// SetTheme switches the active theme. Names are case-insensitive; an empty
// name selects classic.
func SetTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "classic"
	}
	if _, ok := themes[name]; !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes(), ", "))
	}
	current = withName(name)
	return nil
}

// Current is the active theme.
func Current() Theme { return current }
