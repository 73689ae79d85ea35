// Package stage defines the uniform contract every transformation stage
// satisfies, the isolation runner that keeps a failing stage from aborting a
// run, and the before/after hook registries for caller-supplied stages.
package stage

import "context"

// Request carries the inputs for one stage invocation. A stage must be a
// deterministic pure function of these fields: same request, same output.
type Request struct {
	Text      string
	Language  string
	Profile   string
	Intensity int
	Seed      int64
}

// Change is one recorded modification. Changes are append-only and exposed
// read-only on the final result so a caller can always reconstruct what
// happened.
type Change struct {
	Stage       string
	Kind        string
	Original    string
	Replacement string
	Description string
}

// Change kinds used by the core. Stages may introduce their own.
const (
	KindReplace  = "replace"
	KindRemove   = "remove"
	KindSkipped  = "stage_skipped"
	KindRollback = "rollback"
)

// Stage is one named, swappable unit of text transformation. Apply must not
// mutate any sub-string containing a placeholder marker and may fail with any
// error; the runner absorbs failures.
type Stage interface {
	Name() string
	Apply(ctx context.Context, req Request) (string, []Change, error)
}

// Func adapts a plain function into a Stage.
type Func struct {
	StageName string
	Fn        func(ctx context.Context, req Request) (string, []Change, error)
}

// Name implements Stage.
func (f Func) Name() string { return f.StageName }

// Apply implements Stage.
func (f Func) Apply(ctx context.Context, req Request) (string, []Change, error) {
	return f.Fn(ctx, req)
}
