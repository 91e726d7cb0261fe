package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event; lower is coarser.
type Scope uint8

const (
	ScopeError  Scope = iota + 1 // failures, emitted from LevelError up
	ScopeDriver                  // whole-run operations
	ScopeFile                    // per-file work
	ScopeName                    // per-name events
)

func (s Scope) String() string {
	switch s {
	case ScopeError:
		return "error"
	case ScopeDriver:
		return "driver"
	case ScopeFile:
		return "file"
	case ScopeName:
		return "name"
	default:
		return "unknown"
	}
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Name     string
	Detail   string
	Elapsed  time.Duration     // set on KindSpanEnd
	Extra    map[string]string // small key-value payload
}
