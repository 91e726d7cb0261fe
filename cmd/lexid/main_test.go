package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexid/internal/diagfmt"
	"lexid/internal/driver"
	"lexid/internal/name"
	"lexid/internal/version"
)

func TestClassifyAll(t *testing.T) {
	got := classifyAll([]string{"foo", "Bar", "+=", "=", "foo bar", "_x"}, 0)
	require.Len(t, got, 6)

	assert.Equal(t, classifyResult{Text: "foo", Category: "Identifier", Valid: true}, got[0])
	assert.Equal(t, "TypeName", got[1].Category)
	assert.Equal(t, "Operator", got[2].Category)

	assert.False(t, got[3].Valid)
	assert.Equal(t, "ReservedOperator", got[3].Reason)
	assert.Nil(t, got[3].Index)

	require.NotNil(t, got[4].Index)
	assert.Equal(t, 3, *got[4].Index)
	assert.Equal(t, "IllegalCharacter", got[4].Reason)

	assert.Equal(t, "Identifier", got[5].Category)
	assert.Equal(t, "BadLeadingCharacter", got[5].Reason)
}

func TestClassifyAgainstCategory(t *testing.T) {
	got := classifyAll([]string{"Foo", "foo"}, name.CategoryTypeName)
	assert.True(t, got[0].Valid)
	assert.False(t, got[1].Valid)
	assert.Equal(t, "TypeName", got[1].Category)

	var buf bytes.Buffer
	require.NoError(t, renderClassifyPretty(&buf, got))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TypeName")
	assert.Contains(t, lines[1], "invalid")
}

func TestGenerateNamesMinimal(t *testing.T) {
	got, err := generateNames("all", 2, 0, 8)
	require.NoError(t, err)
	texts := make([]string, len(got))
	for i, n := range got {
		texts[i] = n.GoString()
	}
	assert.Equal(t, []string{
		"Identifier v", "Identifier v",
		"TypeName T", "TypeName T",
		"Operator +", "Operator *",
	}, texts)
}

func TestGenerateNamesSeeded(t *testing.T) {
	a, err := generateNames("op", 50, 7, 4)
	require.NoError(t, err)
	b, err := generateNames("op", 50, 7, 4)
	require.NoError(t, err)
	require.Len(t, a, 50)
	for i := range a {
		assert.Equal(t, a[i].Text(), b[i].Text())
		assert.NoError(t, name.Check(name.CategoryOperator, a[i].Text()))
		assert.LessOrEqual(t, len(a[i].Text()), 4)
	}

	_, err = generateNames("keyword", 1, 0, 8)
	require.Error(t, err)
	_, err = generateNames("all", -1, 0, 8)
	require.Error(t, err)
}

func TestRenderCheckFormats(t *testing.T) {
	res, err := driver.CheckSource(context.Background(), "in.lx", []byte("foo Bar foo.x\n"), driver.Options{})
	require.NoError(t, err)

	run := func(format string, names bool) (string, string) {
		var out, errOut bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		require.NoError(t, renderCheck(cmd, format, "off", res, names))
		return out.String(), errOut.String()
	}

	out, errOut := run("pretty", true)
	assert.Contains(t, errOut, "in.lx:1:12: ERROR NAM1102")
	assert.Contains(t, errOut, "checked 1 file(s): 1 error(s), 0 warning(s), 2 name(s)")
	assert.Contains(t, out, "CATEGORY")

	_, errOut = run("short", false)
	assert.Equal(t, "in.lx:1:12: ERROR NAM1102: invalid Identifier \"foo.x\": illegal character '.' at offset 3\n", errOut)

	out, _ = run("json", true)
	var decoded checkOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Files)
	assert.Equal(t, 1, decoded.Diagnostics.Count)
	require.Len(t, decoded.Names, 2)
	assert.Equal(t, "foo", decoded.Names[0].Text)

	out, _ = run("msgpack", false)
	assert.NotEmpty(t, out)
}

func TestDisplayPathsWithoutWorkingDir(t *testing.T) {
	mode, base := displayPaths(func() (string, error) { return "", errors.New("getwd: no such file or directory") })
	assert.Equal(t, diagfmt.PathModeAbsolute, mode)
	assert.Empty(t, base)

	mode, base = displayPaths(func() (string, error) { return "/work", nil })
	assert.Equal(t, diagfmt.PathModeAuto, mode)
	assert.Equal(t, "/work", base)
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.0.0", GitCommit: "abc", BuildDate: "unknown"}
	renderVersionPretty(&buf, info, versionOptions{showHash: true})
	assert.Equal(t, "lexid 1.0.0\ncommit: abc\n", buf.String())

	buf.Reset()
	require.NoError(t, renderVersionJSON(&buf, info, versionOptions{showDate: true}))
	var payload versionPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, versionPayload{Tool: "lexid", Version: "1.0.0", BuildDate: "unknown"}, payload)
}

func TestUseColor(t *testing.T) {
	assert.True(t, useColor("on", nil))
	assert.False(t, useColor("off", nil))
	assert.False(t, useColor("auto", nil))
}
