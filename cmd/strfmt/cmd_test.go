package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt"
)

func TestRenderBatch(t *testing.T) {
	t.Parallel()
	list := []job{
		{Template: "{:>4}", Args: []any{1}},
		{Template: "{0}-{0}", Args: []any{"x"}},
		{Template: "{}", Args: []any{[]any{1, nil}}},
	}
	got, err := renderBatch(context.Background(), strfmt.New(), list, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"   1", "x-x", "[1, ]"}, got)
}

func TestRenderBatchError(t *testing.T) {
	t.Parallel()
	list := []job{
		{Template: "{}", Args: []any{1}},
		{Template: "{} {}", Args: []any{1}},
	}
	_, err := renderBatch(context.Background(), strfmt.New(), list, 0)
	require.ErrorIs(t, err, strfmt.ErrUnboundField)
	assert.Contains(t, err.Error(), "job 1")
}

func TestRenderBatchEmpty(t *testing.T) {
	t.Parallel()
	got, err := renderBatch(context.Background(), strfmt.New(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReport(t *testing.T) {
	t.Parallel()
	_, err := strfmt.Render("ab{0!q}", 1)
	require.Error(t, err)

	var buf bytes.Buffer
	report(&buf, err, false)
	assert.Equal(t,
		"error: invalid format string at position 5\n  ab{0!q}\n       ^\n  unknown format conversion specifier, expected one of: s, r, i, d\n",
		buf.String())
}

func TestReportPlainError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	report(&buf, strfmt.ErrUnsupportedValue, false)
	assert.Equal(t, "error: unsupported value\n", buf.String())
}

func TestNewSpecView(t *testing.T) {
	t.Parallel()
	sp, err := strfmt.ParseSpec("*^+#10,.3f")
	require.NoError(t, err)
	p := 3
	assert.Equal(t, specView{
		Fill: "*", Align: "^", Sign: "+", Alternate: true,
		Width: 10, Grouping: true, Precision: &p, Type: "f",
	}, newSpecView(sp))
}

func TestFormatterOptions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "strfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sequence: {open: \"(\", sep: \",\", close: \")\"}\n"), 0o600))

	o := &options{config: path, lenient: true}
	f, err := o.formatter(o.logger())
	require.NoError(t, err)
	got, err := f.Render("{} {}", []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "(1,2) ", got)
}

func TestFormatterMissingConfig(t *testing.T) {
	t.Parallel()
	o := &options{config: filepath.Join(t.TempDir(), "nope.toml")}
	_, err := o.formatter(o.logger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
