package fuzztests

import (
	"errors"
	"testing"

	"lexid/internal/name"
)

// FuzzCheckTotal: every category answers for every input, the bool and
// error forms agree, and at most one category accepts.
func FuzzCheckTotal(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		accepted := 0
		for _, c := range name.Categories {
			err := name.CheckBytes(c, input)
			if ok := name.IsValidBytes(c, input); ok != (err == nil) {
				t.Fatalf("%s: IsValid=%v but Check=%v for %q", c, ok, err, input)
			}
			if err == nil {
				accepted++
				continue
			}
			var ne *name.InvalidNameError
			if !errors.As(err, &ne) {
				t.Fatalf("%s: %v is not an InvalidNameError", c, err)
			}
			if ne.Category != c || ne.Text != string(input) {
				t.Fatalf("%s: error describes %s %q", c, ne.Category, ne.Text)
			}
			if ne.Index < 0 || (len(input) > 0 && ne.Index >= len(input)) {
				t.Fatalf("%s: index %d out of range for %q", c, ne.Index, input)
			}
		}
		if accepted > 1 {
			t.Fatalf("%q accepted by %d categories", input, accepted)
		}

		n, err := name.ParseBytes(input)
		if (err == nil) != (accepted == 1) {
			t.Fatalf("Parse(%q) = %v, %v; categories accepting: %d", input, n, err, accepted)
		}
		if err == nil && n.Text() != string(input) {
			t.Fatalf("Parse(%q) changed text to %q", input, n.Text())
		}
	})
}

// FuzzFromFuzzBytesValid: mapped names always satisfy their category.
func FuzzFromFuzzBytesValid(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		for _, c := range name.Categories {
			n := name.FromFuzzBytes(c, input)
			if n == nil {
				t.Fatalf("%s: nil name for %q", c, input)
			}
			if n.Category() != c {
				t.Fatalf("%s: got category %s", c, n.Category())
			}
			if err := name.Check(c, n.Text()); err != nil {
				t.Fatalf("%s: FromFuzzBytes(%q) = %q is invalid: %v", c, input, n.Text(), err)
			}
		}
	})
}
