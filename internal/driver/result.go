package driver

import (
	"lexid/internal/diag"
	"lexid/internal/observ"
	"lexid/internal/source"
	"lexid/internal/symtab"
	"lexid/internal/token"
)

// FileResult is the outcome for one input file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	Counts [diag.SevError + 1]int // reported before the bag limit applied
	Timing *observ.Report
}

// Result aggregates a whole run. Files keep the input order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Names   *symtab.Set
	Bag     *diag.Bag // every file's diagnostics, sorted
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *Result) HasErrors() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// Counts sums FileResult.Counts over all files.
func (r *Result) Counts() [diag.SevError + 1]int {
	var total [diag.SevError + 1]int
	for _, f := range r.Files {
		for i, n := range f.Counts {
			total[i] += n
		}
	}
	return total
}
