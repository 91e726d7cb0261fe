package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Level
	}{
		{"", LevelOff}, {"off", LevelOff}, {"ERROR", LevelError},
		{"phase", LevelPhase}, {"detail", LevelDetail}, {"debug", LevelDebug},
	} {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestShouldEmit(t *testing.T) {
	assert.False(t, LevelOff.ShouldEmit(ScopeError))
	assert.True(t, LevelError.ShouldEmit(ScopeError))
	assert.False(t, LevelError.ShouldEmit(ScopeDriver))
	assert.True(t, LevelPhase.ShouldEmit(ScopeDriver))
	assert.False(t, LevelPhase.ShouldEmit(ScopeFile))
	assert.True(t, LevelDetail.ShouldEmit(ScopeFile))
	assert.False(t, LevelDetail.ShouldEmit(ScopeName))
	assert.True(t, LevelDebug.ShouldEmit(ScopeName))
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	assert.Equal(t, Nop, tr)
	assert.False(t, tr.Enabled())
}

func TestSpanNestingText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	require.NoError(t, err)
	ctx := WithTracer(context.Background(), tr)

	ctx, outer := Begin(ctx, ScopeDriver, "check")
	_, inner := Begin(ctx, ScopeFile, "scan")
	inner.WithExtra("tokens", "3").End("a.lx")
	Point(ctx, ScopeName, "skipped", "debug only")
	outer.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[driver] → check")
	assert.Contains(t, lines[1], "[file]   → scan")
	assert.Contains(t, lines[2], "← scan (a.lx) {tokens=3}")
	assert.Contains(t, lines[3], "[driver] ← check")
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)
	Point(ctx, ScopeName, "intern", "foo")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "point", got["kind"])
	assert.Equal(t, "name", got["scope"])
	assert.Equal(t, "intern", got["name"])
	assert.Equal(t, "foo", got["detail"])
}

func TestFromContextDefaultsToNop(t *testing.T) {
	assert.Equal(t, Nop, FromContext(context.Background()))
	ctx, sp := Begin(context.Background(), ScopeDriver, "x")
	sp.End("")
	assert.Equal(t, Nop, FromContext(ctx))
}
