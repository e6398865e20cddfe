package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "xaoc/internal/platform/testkit"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"off", "disabled"},
		{"", "warn"},
		{"   nonsense   ", "warn"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C_WithPuzzle(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:      "debug",
		Format:     "console",
		Component:  "root",
		Writer:     &buf,
		WithCaller: true,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("aoc").Info().Msg("named-msg")

	ctx := WithPuzzle(context.Background(), 2015, 7)
	C(ctx).Info().Msg("ctx-msg")

	// background child (exercise only)
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()

	// tolerate "key=value" vs "key= value" spacing
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "aoc")
	kit.MustContain(t, out, "year=")
	kit.MustContain(t, out, "2015")
	kit.MustContain(t, out, "day=")
	kit.MustContain(t, out, "build=")
}

func TestFromEnv_Independently(t *testing.T) {
	t.Setenv("XAOC_LOG_LEVEL", "DEBUG")
	t.Setenv("XAOC_LOG_FORMAT", "json")
	t.Setenv("XAOC_LOG_COMPONENT", "runner")
	t.Setenv("XAOC_LOG_CALLER", "true")

	opt := FromEnv()
	if opt.Level != "debug" || opt.Format != "json" || opt.Component != "runner" || !opt.WithCaller {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("XAOC_LOG_LEVEL", "")
	t.Setenv("XAOC_LOG_FORMAT", "")
	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "console" {
		t.Fatalf("FromEnv defaults = %+v", opt)
	}
}
