package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vmihailenco/msgpack/v5"

	"lexid/internal/source"
	"lexid/internal/symtab"
)

// NameOutput is one row of a name listing.
type NameOutput struct {
	Category string `json:"category" msgpack:"c"`
	Text     string `json:"text" msgpack:"t"`
	ID       uint32 `json:"id" msgpack:"i"`
	Count    int    `json:"count" msgpack:"n"`
	First    string `json:"first" msgpack:"f"`
}

// BuildNames flattens the table into listing rows, first-seen positions
// rendered as path:line:col.
func BuildNames(set *symtab.Set, fs *source.FileSet, mode PathMode, base string) []NameOutput {
	rows := set.Rows()
	out := make([]NameOutput, 0, len(rows))
	for _, r := range rows {
		pos, _ := fs.Resolve(r.First)
		out = append(out, NameOutput{
			Category: r.Name.Category().String(),
			Text:     r.Name.Text(),
			ID:       uint32(r.ID),
			Count:    r.Count,
			First:    fmt.Sprintf("%s:%d:%d", displayPath(fs.Get(r.First.File), mode, base), pos.Line, pos.Col),
		})
	}
	return out
}

func FormatNamesPretty(w io.Writer, rows []NameOutput) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tNAME\tCOUNT\tFIRST")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Category, r.Text, r.Count, r.First)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func FormatNamesJSON(w io.Writer, rows []NameOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

// FormatNamesMsgpack writes rows as one msgpack array.
func FormatNamesMsgpack(w io.Writer, rows []NameOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(rows)
}
