package route

import (
	"fmt"
	"strings"
)

// Backend identifies one of the supported remote servers.
type Backend int

const (
	Radarr Backend = iota
	Sonarr
	Lidarr
)

var backendNames = [...]string{
	Radarr: "radarr",
	Sonarr: "sonarr",
	Lidarr: "lidarr",
}

// AllBackends lists every backend in display order.
func AllBackends() []Backend {
	return []Backend{Radarr, Sonarr, Lidarr}
}

func (b Backend) String() string {
	if int(b) < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("backend(%d)", int(b))
	}
	return backendNames[b]
}

// Title returns the display name of the backend.
func (b Backend) Title() string {
	name := b.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseBackend resolves a backend from its lowercase name.
func ParseBackend(name string) (Backend, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range backendNames {
		if candidate == trimmed {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}

// Route addresses what is currently on screen. Context names the block to
// return to when a nested flow completes; None means no context.
type Route struct {
	Backend Backend
	Block   Block
	Context Block
}

// New returns a route without a return context.
func New(backend Backend, block Block) Route {
	return Route{Backend: backend, Block: block}
}

// WithContext returns a copy of r carrying the given return context.
func (r Route) WithContext(ctx Block) Route {
	r.Context = ctx
	return r
}

// HasContext reports whether the route carries a return context.
func (r Route) HasContext() bool {
	return r.Context != None
}

func (r Route) String() string {
	if r.HasContext() {
		return fmt.Sprintf("%s:%s(%s)", r.Backend, r.Block, r.Context)
	}
	return fmt.Sprintf("%s:%s", r.Backend, r.Block)
}
