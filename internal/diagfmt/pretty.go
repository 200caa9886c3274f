// Package diagfmt renders diagnostic bags for humans (pretty) and tools
// (json). It is purely a consumer of internal/diag; nothing here mutates or
// reorders a bag, because report order is part of the emission contract.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sable/internal/diag"
	"sable/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// Pretty formats diagnostics in bag order. For each diagnostic with a
// location it prints
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the source line and a ^~~~ underline sized with display
// widths, then notes in the same shape. Diagnostics without a location (the
// normal case for synthesized symbols and resources) print the header line
// only, with no invented position.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeader(w, fs, diag.SevInfo, d.Code, n.Span, n.Msg, opts)
				writeContext(w, fs, n.Span, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, span source.Span, msg string, opts PrettyOpts) {
	sevLabel := sev.String()
	if opts.Color {
		switch sev {
		case diag.SevError:
			sevLabel = errorColor.Sprint(sevLabel)
		case diag.SevWarning:
			sevLabel = warningColor.Sprint(sevLabel)
		case diag.SevInfo:
			sevLabel = infoColor.Sprint(sevLabel)
		}
	}

	if loc, ok := formatLocation(fs, span); ok {
		fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, sevLabel, code.ID(), msg)
		return
	}
	fmt.Fprintf(w, "%s [%s]: %s\n", sevLabel, code.ID(), msg)
}

func formatLocation(fs *source.FileSet, span source.Span) (string, bool) {
	if span.IsZero() || fs == nil {
		return "", false
	}
	f := fs.Get(span.File)
	if f == nil {
		return "", false
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", f.DisplayPath(), start.Line, start.Col), true
}

// writeContext prints the offending source line with a caret underline.
// Widths use runewidth so the underline stays aligned under non-ASCII text.
func writeContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	if span.IsZero() || fs == nil {
		return
	}
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	lo := int(start.Col) - 1
	if lo > len(line) {
		lo = len(line)
	}
	pad := runewidth.StringWidth(line[:lo])

	length := 1
	if end.Line == start.Line && end.Col > start.Col {
		hi := int(end.Col) - 1
		if hi > len(line) {
			hi = len(line)
		}
		if hi > lo {
			length = runewidth.StringWidth(line[lo:hi])
		}
		if length < 1 {
			length = 1
		}
	}

	underline := "^" + strings.Repeat("~", length-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}
