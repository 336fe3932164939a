package main

import (
	"gopkg.in/yaml.v3"
)

// parseArg decodes a command line argument as a YAML value. Arguments that
// are empty, null or not valid YAML are returned as text.
func parseArg(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}

// normalizeArgs replaces YAML nulls inside decoded arguments with empty text
// so every argument can be rendered.
func normalizeArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = normalize(a)
	}
	return out
}

func normalize(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case []any:
		return normalizeArgs(v)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = normalize(e)
		}
		return m
	default:
		return v
	}
}
