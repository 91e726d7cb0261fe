package source

type (
	// FileID identifies a file inside a FileSet.
	FileID uint32
	// FileFlags records how the content was obtained and normalised.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (tests, stdin, fuzz input).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds one loaded name source.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Flags   FileFlags
}

// LineCol is a 1-based human position.
type LineCol struct {
	Line uint32
	Col  uint32
}
