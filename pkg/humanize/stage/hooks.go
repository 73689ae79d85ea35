package stage

import (
	"fmt"
	"sync"

	"github.com/prosekit/humanize/pkg/humanize/internalerr"
)

// Position says whether a hook runs before or after its target stage.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// Hook is a caller-supplied stage attached relative to a named core stage.
type Hook struct {
	Position Position
	Target   string
	Stage    Stage
}

// Registry holds hooks keyed by position and target stage. Registrations are
// validated against the known target names immediately, never at run time.
// Safe for concurrent use. One registry is process-wide (global add-ons,
// cleared explicitly in tests); each pipeline also carries a private one.
type Registry struct {
	mu      sync.Mutex
	targets map[string]struct{}
	hooks   []Hook
}

// NewRegistry creates a registry accepting the given target stage names.
func NewRegistry(targets []string) *Registry {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}
	return &Registry{targets: set}
}

// Register adds a hook. Position must be Before or After and target must name
// a known stage; anything else fails here, not during a run.
func (r *Registry) Register(position Position, target string, s Stage) error {
	if position != Before && position != After {
		return fmt.Errorf("%w: position must be %q or %q", internalerr.ErrInvalidHook, Before, After)
	}
	if s == nil {
		return fmt.Errorf("%w: nil stage", internalerr.ErrInvalidHook)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.targets[target]; !ok {
		return fmt.Errorf("%w: %q", internalerr.ErrUnknownStage, target)
	}
	r.hooks = append(r.hooks, Hook{Position: position, Target: target, Stage: s})
	return nil
}

// For returns the hooks registered at the given position around target, in
// registration order.
func (r *Registry) For(position Position, target string) []Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Stage
	for _, h := range r.hooks {
		if h.Position == position && h.Target == target {
			out = append(out, h.Stage)
		}
	}
	return out
}

// Clear removes every registered hook. Tests use this to keep the
// process-wide registry from leaking between cases.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = nil
}
