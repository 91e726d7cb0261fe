package name

type text interface{ ~string | ~[]byte }

// IsValid reports whether s is a valid name of category c.
// It is total: empty input, non-ASCII bytes and unknown categories all yield false.
func IsValid(c Category, s string) bool {
	return check(c, s) == nil
}

// IsValidBytes is IsValid over a byte slice; b is not retained.
func IsValidBytes(c Category, b []byte) bool {
	return check(c, b) == nil
}

// Check validates s against category c. It returns nil when s is valid and an
// *InvalidNameError describing the first violation otherwise.
func Check(c Category, s string) error {
	if err := check(c, s); err != nil {
		return err
	}
	return nil
}

// CheckBytes is Check over a byte slice; b is not retained.
func CheckBytes(c Category, b []byte) error {
	if err := check(c, b); err != nil {
		return err
	}
	return nil
}

// Classify returns the category accepting s. Leading sets are disjoint, so at
// most one category can accept a text.
func Classify(s string) (Category, bool) {
	for _, c := range Categories {
		if check(c, s) == nil {
			return c, true
		}
	}
	return 0, false
}

// categoryFor picks the category a text is aimed at by its first byte.
// Bytes outside every leading set fall back to Identifier.
func categoryFor[T text](s T) Category {
	if len(s) == 0 {
		return CategoryIdentifier
	}
	for _, c := range Categories {
		if descriptors[c].leading.has(s[0]) {
			return c
		}
	}
	return CategoryIdentifier
}

// check порядок: пусто, первый байт, алфавит, зарезервированные значения.
func check[T text](c Category, s T) *InvalidNameError {
	d := c.descriptor()
	if d == nil {
		return &InvalidNameError{Category: c, Reason: ReasonUnknownCategory, Text: string(s)}
	}
	if len(s) == 0 {
		return &InvalidNameError{Category: c, Reason: ReasonEmpty}
	}
	if !d.leading.has(s[0]) {
		return &InvalidNameError{Category: c, Reason: ReasonBadLeadingCharacter, Index: 0, Char: s[0], Text: string(s)}
	}
	for i := 1; i < len(s); i++ {
		if !d.alphabet.has(s[i]) {
			return &InvalidNameError{Category: c, Reason: ReasonIllegalCharacter, Index: i, Char: s[i], Text: string(s)}
		}
	}
	if d.reserved != nil && d.reserved(string(s)) {
		return &InvalidNameError{Category: c, Reason: ReasonReservedOperator, Text: string(s)}
	}
	return nil
}
