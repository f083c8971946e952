package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

var statusStyles = map[statusKind]struct{ label, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

const defaultStatusLabelWidth = 12

// statusPrinter writes aligned "  Label:  [KIND] message" lines, coloured
// only when the destination is a terminal.
type statusPrinter struct {
	w          io.Writer
	labelWidth int
	colorize   bool
}

func newStatusPrinter(w io.Writer, labels ...string) *statusPrinter {
	width := defaultStatusLabelWidth
	for _, label := range labels {
		width = max(width, len(label)+1)
	}
	return &statusPrinter{w: w, labelWidth: width, colorize: shouldColorize(w)}
}

func (p *statusPrinter) line(label string, kind statusKind, message string) {
	fmt.Fprintln(p.w, renderStatusLine(label, p.labelWidth, kind, message, p.colorize))
}

func renderStatusLine(label string, width int, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	status := "[" + style.label + "]"
	if message != "" {
		status += " " + message
	}
	line := fmt.Sprintf("  %-*s %s", width, label+":", status)
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
