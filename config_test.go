package strfmt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt"
)

const yamlConfig = `
strict: false
sequence: {open: "<", sep: " ", close: ">"}
pair: {open: "(", sep: "=", close: ")"}
locale:
  decimal: ","
  group: "."
`

const tomlConfig = `
strict = false

[sequence]
open = "<"
sep = " "
close = ">"

[pair]
open = "("
sep = "="
close = ")"

[locale]
decimal = ","
group = "."
group_size = 3
`

func renderWith(t *testing.T, opts []strfmt.Option) string {
	t.Helper()
	f := strfmt.New(opts...)
	got, err := f.Render("{} {} {:,.1f} [{}]", []int{1, 2}, map[string]int{"k": 1}, 1234.5)
	require.NoError(t, err)
	return got
}

func TestDecodeConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format strfmt.ConfigFormat
		input  string
	}{
		"yaml": {format: strfmt.ConfigYAML, input: yamlConfig},
		"toml": {format: strfmt.ConfigTOML, input: tomlConfig},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts, err := strfmt.DecodeConfig(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, "<1 2> {(k=1)} 1.234,5 []", renderWith(t, opts))
		})
	}
}

func TestDecodeConfigEmpty(t *testing.T) {
	t.Parallel()
	opts, err := strfmt.DecodeConfig(strings.NewReader(""), strfmt.ConfigYAML)
	require.NoError(t, err)
	f := strfmt.New(opts...)
	_, err = f.Render("{}")
	assert.ErrorIs(t, err, strfmt.ErrUnboundField)
}

func TestDecodeConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format strfmt.ConfigFormat
		input  string
	}{
		"unknown yaml key":    {format: strfmt.ConfigYAML, input: "colour: red\n"},
		"unknown toml key":    {format: strfmt.ConfigTOML, input: "colour = \"red\"\n"},
		"bad yaml":            {format: strfmt.ConfigYAML, input: "strict: [\n"},
		"bad toml":            {format: strfmt.ConfigTOML, input: "strict = \n"},
		"long decimal":        {format: strfmt.ConfigYAML, input: "locale: {decimal: \"..\"}\n"},
		"empty group":         {format: strfmt.ConfigYAML, input: "locale: {group: \"\"}\n"},
		"negative group size": {format: strfmt.ConfigYAML, input: "locale: {group_size: -1}\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := strfmt.DecodeConfig(strings.NewReader(tt.input), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeConfigUnsupported(t *testing.T) {
	t.Parallel()
	_, err := strfmt.DecodeConfig(strings.NewReader("{}"), "json")
	assert.ErrorIs(t, err, strfmt.ErrUnsupportedConfig)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	tests := map[string]struct {
		file    string
		content string
	}{
		"yaml": {file: "strfmt.yaml", content: yamlConfig},
		"yml":  {file: "strfmt.yml", content: yamlConfig},
		"toml": {file: "strfmt.toml", content: tomlConfig},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			opts, err := strfmt.LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "<1 2> {(k=1)} 1.234,5 []", renderWith(t, opts))
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := strfmt.LoadConfig(filepath.Join(dir, "strfmt.json"))
	assert.ErrorIs(t, err, strfmt.ErrUnsupportedConfig)

	_, err = strfmt.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("nope = 1\n"), 0o600))
	_, err = strfmt.LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestParseConfigFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    strfmt.ConfigFormat
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":       {input: "yaml", want: strfmt.ConfigYAML, wantErr: require.NoError},
		"yml ext":    {input: ".yml", want: strfmt.ConfigYAML, wantErr: require.NoError},
		"toml upper": {input: "TOML", want: strfmt.ConfigTOML, wantErr: require.NoError},
		"unknown":    {input: "ini", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.ParseConfigFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
