package diag

import (
	"fmt"
	"strings"

	"lexid/internal/source"
)

// FormatShort renders diagnostics one per line as
// "path:line:col: SEVERITY ID: message", in bag order. Notes follow their
// diagnostic, indented. It is the stable form used by golden tests and the
// CLI short output.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(location(fs, d.Primary))
		fmt.Fprintf(&sb, ": %s %s: %s\n", d.Severity, d.Code.ID(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  note: %s: %s\n", location(fs, n.Span), n.Msg)
		}
	}
	return sb.String()
}

func location(fs *source.FileSet, sp source.Span) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}
