package module

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"xaoc/internal/modkit"
	"xaoc/internal/platform/config"
	kit "xaoc/internal/platform/testkit"
	"xaoc/internal/platform/testkit/aocfake"
	"xaoc/internal/services/puzzle/domain"
)

func TestFromConfig(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XAOC_CONFIG_DIR", root)
	t.Setenv("XAOC_BASE_URL", "http://127.0.0.1:9/")
	t.Setenv("XAOC_CONTACT", "elf@example.com")
	t.Setenv("XAOC_HTTP_TIMEOUT", "5s")

	o := FromConfig(config.New())
	if o.Root != root || o.BaseURL != "http://127.0.0.1:9" || o.Contact != "elf@example.com" || o.Timeout != 5*time.Second {
		t.Fatalf("options = %+v", o)
	}
	if o.Prompt == nil {
		t.Fatalf("prompt not wired")
	}
}

func TestFromConfigDefaults(t *testing.T) {
	kit.Serial(t)
	t.Setenv("XAOC_CONFIG_DIR", "")
	t.Setenv("XAOC_BASE_URL", "")
	t.Setenv("XAOC_HTTP_TIMEOUT", "-3s")
	kit.Swap(t, &userConfigDir, func() (string, error) { return "/home/elf/.config", nil })

	o := FromConfig(config.New())
	if o.Root != filepath.Join("/home/elf/.config", "xaoc") {
		t.Fatalf("root = %s", o.Root)
	}
	if o.BaseURL != "" || o.Timeout != 0 {
		t.Fatalf("options = %+v", o)
	}

	kit.Swap(t, &userConfigDir, func() (string, error) { return "", errors.New("no home") })
	if DefaultRoot() != ".xaoc" {
		t.Fatalf("fallback root = %s", DefaultRoot())
	}
}

func TestModuleWiring(t *testing.T) {
	t.Parallel()
	const token = "tok-123"
	srv := aocfake.New(t, token)
	srv.SetInput(2016, 3, "5 10 25\n")

	root := t.TempDir()
	m := New(modkit.Deps{Now: func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }}, Options{
		Root:    root,
		BaseURL: srv.URL,
	})
	if m.Name() != "puzzle" || m.Root() != root {
		t.Fatalf("name/root = %s %s", m.Name(), m.Root())
	}

	ports := m.Puzzle()
	if err := ports.Session.Save(token); err != nil {
		t.Fatal(err)
	}
	in := modkit.MustPortsOf[domain.InputPort](m)
	got, err := in.FetchInput(context.Background(), domain.Puzzle{Year: 2016, Day: 3})
	if err != nil || got != "5 10 25\n" {
		t.Fatalf("FetchInput = %q, %v", got, err)
	}

	entries, err := ports.Cache.List()
	if err != nil || len(entries) != 1 || entries[0].Year != 2016 || entries[0].Day != 3 {
		t.Fatalf("cache = %+v, %v", entries, err)
	}
	if _, ok := modkit.PortsOf[domain.SubmitPort](m); !ok {
		t.Fatalf("submit port missing")
	}
	if _, ok := modkit.PortsOf[domain.ReleasePort](m); !ok {
		t.Fatalf("release port missing")
	}
}
