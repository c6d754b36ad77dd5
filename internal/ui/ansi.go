package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func C(color, s string) string {
	if disableColor || current.Plain || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

// Dim renders s faint.
func Dim(s string) string { return C(dim, s) }

func OK(w io.Writer, msg string)   { status(w, current.Success, current.SymOK, msg) }
func Fail(w io.Writer, msg string) { status(w, current.Error, current.SymFail, msg) }
func Warn(w io.Writer, msg string) { status(w, current.Pending, current.SymWarn, msg) }

func status(w io.Writer, color, sym, msg string) {
	fmt.Fprintln(w, C(color, sym+" "+msg))
}

// Section prints a titled rule between demo steps.
func Section(w io.Writer, title string) {
	t := Current()
	rule := strings.Repeat(t.H, 10)
	fmt.Fprintln(w)
	fmt.Fprintln(w, C(t.Muted, rule)+" "+C(t.Title, title)+" "+C(t.Muted, rule))
}
