package strfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt"
)

func TestFormatValueInt(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		spec string
		want string
	}{
		"natural":         {v: 42, spec: "", want: "42"},
		"width":           {v: 42, spec: "5", want: "   42"},
		"left":            {v: 42, spec: "<5", want: "42   "},
		"center":          {v: 42, spec: "^6", want: "  42  "},
		"center odd gap":  {v: 42, spec: "*^7", want: "**42***"},
		"internal":        {v: -42, spec: "=6", want: "-   42"},
		"zero pad":        {v: -42, spec: "06", want: "-00042"},
		"explicit fill":   {v: 7, spec: "*>04", want: "***7"},
		"plus":            {v: 42, spec: "+", want: "+42"},
		"space":           {v: 42, spec: " ", want: " 42"},
		"space negative":  {v: -42, spec: " ", want: "-42"},
		"hex":             {v: 255, spec: "x", want: "ff"},
		"hex alternate":   {v: 255, spec: "#x", want: "0xff"},
		"hex upper":       {v: 255, spec: "#X", want: "0XFF"},
		"octal":           {v: 255, spec: "#o", want: "0o377"},
		"binary":          {v: 255, spec: "b", want: "11111111"},
		"binary padded":   {v: 5, spec: "#010b", want: "0b00000101"},
		"negative hex":    {v: -255, spec: "#x", want: "-0xff"},
		"grouping":        {v: 1234567, spec: ",", want: "1,234,567"},
		"number":          {v: 1234567, spec: "n", want: "1,234,567"},
		"grouping short":  {v: 123, spec: ",", want: "123"},
		"decimal":         {v: 1234, spec: "d", want: "1234"},
		"precision":       {v: 123, spec: ".2", want: "123"},
		"as fixed":        {v: 3, spec: "f", want: "3.000000"},
		"as scientific":   {v: 3, spec: ".2e", want: "3.00e+00"},
		"as percent":      {v: 1, spec: ".0%", want: "100%"},
		"min int64":       {v: int64(math.MinInt64), spec: "", want: "-9223372036854775808"},
		"grouped padded":  {v: -1234, spec: "08,", want: "-001,234"},
		"wide fill":       {v: 1, spec: "中>5", want: "中中1"},
		"sign and center": {v: 5, spec: "^+5", want: " +5  "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.FormatValue(tt.v, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValueFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    float64
		spec string
		want string
	}{
		"adaptive short":    {v: 0.1, spec: "", want: "0.1"},
		"adaptive whole":    {v: 2, spec: "", want: "2.0"},
		"adaptive digits":   {v: 3.14159, spec: "", want: "3.14159"},
		"adaptive half":     {v: 1.5, spec: "", want: "1.5"},
		"adaptive tiny":     {v: 1e-5, spec: "", want: "1e-05"},
		"adaptive negative": {v: -0.25, spec: "", want: "-0.25"},
		"adaptive padded":   {v: 2.5, spec: "06", want: "0002.5"},
		"precision":         {v: 3.14159, spec: ".2", want: "3.14"},
		"fixed":             {v: 3.14159, spec: ".2f", want: "3.14"},
		"fixed width":       {v: 3.14159, spec: "8.3f", want: "   3.142"},
		"fixed zero pad":    {v: -3.14159, spec: "08.2f", want: "-0003.14"},
		"fixed default":     {v: 1.5, spec: "f", want: "1.500000"},
		"grouped fixed":     {v: 1234567.891, spec: ",.2f", want: "1,234,567.89"},
		"scientific":        {v: 2.5, spec: "e", want: "2.500000e+00"},
		"scientific upper":  {v: 2.5, spec: "E", want: "2.500000E+00"},
		"percent":           {v: 0.25, spec: "%", want: "25.000000%"},
		"percent precision": {v: 0.25, spec: ".1%", want: "25.0%"},
		"general":           {v: 0.5, spec: "g", want: "0.5"},
		"general whole":     {v: 2, spec: "g", want: "2"},
		"general large":     {v: 1234567, spec: "g", want: "1.23457e+06"},
		"general upper":     {v: 1234567, spec: "G", want: "1.23457E+06"},
		"general precision": {v: 123.456, spec: ".2g", want: "1.2e+02"},
		"general tiny":      {v: 1e-5, spec: "g", want: "1e-05"},
		"plus":              {v: 1.5, spec: "+.1f", want: "+1.5"},
		"space":             {v: 1.5, spec: " .1f", want: " 1.5"},
		"inf":               {v: math.Inf(1), spec: "", want: "inf"},
		"negative inf":      {v: math.Inf(-1), spec: "f", want: "-inf"},
		"inf plus":          {v: math.Inf(1), spec: "+", want: "+inf"},
		"nan upper":         {v: math.NaN(), spec: "F", want: "NAN"},
		"nan padded":        {v: math.NaN(), spec: ">5", want: "  nan"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.FormatValue(tt.v, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValueText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    string
		spec string
		want string
	}{
		"natural":        {v: "ab", spec: "", want: "ab"},
		"default left":   {v: "ab", spec: "6", want: "ab    "},
		"right":          {v: "ab", spec: ">6", want: "    ab"},
		"center":         {v: "ab", spec: "^6", want: "  ab  "},
		"truncate":       {v: "abcdef", spec: ".2", want: "ab"},
		"truncate pad":   {v: "abcdef", spec: "*^7.3", want: "**abc**"},
		"zero precision": {v: "abc", spec: ".0", want: "abc"},
		"internal":       {v: "ab", spec: "=4", want: "  ab"},
		"wide":           {v: "你", spec: ">4", want: "  你"},
		"wide truncate":  {v: "你好", spec: ".3", want: "你"},
		"too wide":       {v: "abcdef", spec: "3", want: "abcdef"},
		"wide fill":      {v: "a", spec: "世^6", want: "世a世 "},
		"wide fill odd":  {v: "ab", spec: "世>5", want: "世 ab"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.FormatValue(tt.v, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValueErrors(t *testing.T) {
	t.Parallel()
	_, err := strfmt.FormatValue(1, "5z")
	assert.ErrorIs(t, err, strfmt.ErrParse)

	_, err = strfmt.FormatValue(nil, "")
	assert.ErrorIs(t, err, strfmt.ErrUnsupportedValue)
}

func TestFormatValueLocale(t *testing.T) {
	t.Parallel()
	f := strfmt.New(strfmt.WithLocale(strfmt.Locale{Decimal: ',', Group: '.', GroupSize: 3}))
	got, err := f.FormatValue(1234567.5, ",.1f")
	require.NoError(t, err)
	assert.Equal(t, "1.234.567,5", got)

	got, err = f.FormatValue(12345, "n")
	require.NoError(t, err)
	assert.Equal(t, "12.345", got)
}
