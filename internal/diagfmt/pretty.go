package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lexid/internal/diag"
	"lexid/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var sb strings.Builder
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n",
			displayPath(f, opts.PathMode, opts.BaseDir), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		if f != nil {
			if err := writeExcerpt(&sb, f, fs, d.Primary, p, opts.TabWidth); err != nil {
				return err
			}
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(&sb, "  %s %s:%d:%d: %s\n",
				p.note.Sprint("note:"),
				displayPath(nf, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeExcerpt prints the first line of sp with a caret underline. Columns
// are display cells, so wide runes and tabs keep the carets aligned.
func writeExcerpt(sb *strings.Builder, f *source.File, fs *source.FileSet, sp source.Span, p palette, tabWidth int) error {
	start, end := fs.Resolve(sp)
	line := f.Line(start.Line)
	if line == "" && start.Line == 0 {
		return nil
	}
	col, err := safecast.Conv[int](start.Col)
	if err != nil {
		return fmt.Errorf("column overflow: %w", err)
	}
	col = min(max(col-1, 0), len(line))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		endCol, err := safecast.Conv[int](end.Col)
		if err != nil {
			return fmt.Errorf("column overflow: %w", err)
		}
		endCol = min(endCol-1, len(line))
		width = max(cells(line[col:endCol], tabWidth), 1)
	} else if end.Line > start.Line {
		width = max(cells(line[col:], tabWidth), 1)
	}

	gutter := fmt.Sprintf("%4d | ", start.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	sb.WriteString(p.gutter.Sprint(gutter))
	sb.WriteString(expandTabs(line, tabWidth))
	sb.WriteByte('\n')
	sb.WriteString(p.gutter.Sprint(blank))
	sb.WriteString(strings.Repeat(" ", cells(line[:col], tabWidth)))
	sb.WriteString(p.caret.Sprint("^" + strings.Repeat("~", width-1)))
	sb.WriteByte('\n')
	return nil
}

func cells(s string, tabWidth int) int {
	return runewidth.StringWidth(expandTabs(s, tabWidth))
}

func expandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
