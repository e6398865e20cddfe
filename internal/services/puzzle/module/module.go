// Package module wires the puzzle service to its adapters
package module

import (
	"xaoc/internal/adapters/aoc"
	"xaoc/internal/adapters/credential"
	"xaoc/internal/adapters/inputcache"
	"xaoc/internal/modkit"
	"xaoc/internal/services/puzzle/domain"
	"xaoc/internal/services/puzzle/service"
)

// Ports exposed by the puzzle module
type Ports struct {
	Input   domain.InputPort
	Submit  domain.SubmitPort
	Release domain.ReleasePort
	Session *credential.Store
	Cache   *inputcache.Cache
}

// Module implements the puzzle service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the puzzle module; zero option fields take adapter defaults
func New(deps modkit.Deps, opts Options) *Module {
	if opts.Root == "" {
		opts.Root = DefaultRoot()
	}
	cred := credential.New(opts.Root, opts.Prompt)
	cache := inputcache.New(opts.Root)
	client := aoc.NewClient(aoc.Options{
		BaseURL: opts.BaseURL,
		Contact: opts.Contact,
		Timeout: opts.Timeout,
	})
	svc := service.New(cred, cache, client, service.Config{Now: deps.Clock()})

	deps.Log.Debug().
		Str("root", opts.Root).
		Str("base_url", client.BaseURL()).
		Msg("puzzle module ready")

	return &Module{
		deps: deps,
		opts: opts,
		ports: Ports{
			Input:   svc,
			Submit:  svc,
			Release: svc,
			Session: cred,
			Cache:   cache,
		},
	}
}

// FromDeps builds the module from the environment carried by deps
func FromDeps(deps modkit.Deps) *Module { return New(deps, FromConfig(deps.Cfg)) }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "puzzle" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Puzzle returns the typed port set
func (m *Module) Puzzle() Ports { return m.ports }

// Root returns the configuration root in use
func (m *Module) Root() string { return m.opts.Root }
