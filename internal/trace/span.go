package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

func nextSpanID() uint64 { return globalSpans.Add(1) }

// Span tracks one begin/end pair. A Span from a disabled tracer is inert.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	started  time.Time
	extra    map[string]string
}

// Begin starts a span on the tracer carried by ctx and returns a context
// whose later spans nest under it.
func Begin(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return ctx, &Span{tracer: Nop}
	}
	sp := &Span{
		tracer:   t,
		id:       nextSpanID(),
		parentID: parentFrom(ctx),
		scope:    scope,
		name:     name,
		started:  time.Now(),
	}
	t.Emit(Event{
		Time:     sp.started,
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   sp.id,
		ParentID: sp.parentID,
		Name:     name,
	})
	return WithSpan(ctx, sp), sp
}

// WithExtra attaches a key-value pair reported on End.
func (s *Span) WithExtra(k, v string) *Span {
	if s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 4)
	}
	s.extra[k] = v
	return s
}

// End emits the closing event with the elapsed time.
func (s *Span) End(detail string) {
	if s.id == 0 {
		return
	}
	now := time.Now()
	s.tracer.Emit(Event{
		Time:     now,
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Detail:   detail,
		Elapsed:  now.Sub(s.started),
		Extra:    s.extra,
	})
}

// Point emits an instant event under the current span of ctx.
func Point(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parentFrom(ctx),
		Name:     name,
		Detail:   detail,
	})
}
