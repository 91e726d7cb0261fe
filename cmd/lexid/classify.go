package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lexid/internal/name"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] text...",
	Short: "Classify each argument as Identifier, TypeName or Operator",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().String("category", "", "check against this category only (identifier|typename|operator)")
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type classifyResult struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
	Index    *int   `json:"index,omitempty"`
	Error    string `json:"error,omitempty"`
}

// classifyAll validates every input. With want == 0 the category is picked
// from the first byte, as the scanner does.
func classifyAll(inputs []string, want name.Category) []classifyResult {
	out := make([]classifyResult, 0, len(inputs))
	for _, s := range inputs {
		var err error
		var cat name.Category
		if want == 0 {
			var n name.Name
			if n, err = name.Parse(s); err == nil {
				cat = n.Category()
			}
		} else {
			cat = want
			err = name.Check(want, s)
		}

		r := classifyResult{Text: s, Valid: err == nil}
		var ne *name.InvalidNameError
		switch {
		case err == nil:
			r.Category = cat.String()
		case errors.As(err, &ne):
			r.Category = ne.Category.String()
			r.Reason = ne.Reason.String()
			r.Error = ne.Error()
			if ne.Reason == name.ReasonBadLeadingCharacter || ne.Reason == name.ReasonIllegalCharacter {
				idx := ne.Index
				r.Index = &idx
			}
		default:
			r.Error = err.Error()
		}
		out = append(out, r)
	}
	return out
}

func runClassify(cmd *cobra.Command, args []string) error {
	catStr, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var want name.Category
	if catStr != "" {
		if want, err = name.ParseCategory(catStr); err != nil {
			return err
		}
	}

	results := classifyAll(args, want)
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		err = enc.Encode(results)
	case "pretty":
		err = renderClassifyPretty(cmd.OutOrStdout(), results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.Valid {
			return errReported
		}
	}
	return nil
}

func renderClassifyPretty(w io.Writer, results []classifyResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(tw, "%q\t%s\n", r.Text, r.Category)
			continue
		}
		fmt.Fprintf(tw, "%q\tinvalid\t%s\n", r.Text, r.Error)
	}
	return tw.Flush()
}
