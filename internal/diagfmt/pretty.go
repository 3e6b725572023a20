package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rill/internal/diag"
	"rill/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    <caret underline>
//	  note: <label> (for each note)
//
// The bag is expected to be sorted beforehand.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i := range bag.Items() {
		prettyOne(w, &bag.Items()[i], fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		position(fs, d.Primary, opts.BaseDir),
		paint(severityColor(d.Severity), d.Severity.String(), opts.Color),
		d.Code, d.Message)

	if opts.ShowPreview {
		preview(w, fs, d.Primary, opts)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s: %s (%s)\n",
				paint(noteColor, "note", opts.Color),
				n.Msg, position(fs, n.Span, opts.BaseDir))
		}
	}
}

func position(fs *source.FileSet, sp source.Span, baseDir string) string {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.DisplayPath(baseDir), start.Line, start.Col)
}

// preview prints the first source line of the span with a caret underline.
func preview(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := "^" + strings.Repeat("~", int(width-1))

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n",
		strings.Repeat(" ", int(start.Col-1)),
		paint(infoColor, underline, opts.Color))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func paint(c *color.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
