package humanize

import (
	"github.com/prosekit/humanize/pkg/humanize/stage"
	"github.com/prosekit/humanize/pkg/humanize/stages"
)

// coreStageNames lists the core pipeline stages, in order. Hook registrations
// are validated against this list.
func coreStageNames() []string {
	core := stages.Core()
	names := make([]string, len(core))
	for i, s := range core {
		names[i] = s.Name()
	}
	return names
}

// globalHooks is the process-wide hook registry, shared by every Humanizer.
// Register global add-ons at startup; tests clear it explicitly.
var globalHooks = stage.NewRegistry(coreStageNames())

// RegisterGlobalHook attaches a stage before or after a named core stage for
// every Humanizer in the process. Invalid positions and unknown targets fail
// here, not at run time.
func RegisterGlobalHook(position stage.Position, target string, s stage.Stage) error {
	return globalHooks.Register(position, target, s)
}

// ClearGlobalHooks removes every process-wide hook. Call from tests to keep
// registrations from leaking between cases.
func ClearGlobalHooks() {
	globalHooks.Clear()
}

// RegisterHook attaches a stage before or after a named core stage for this
// Humanizer only.
func (h *Humanizer) RegisterHook(position stage.Position, target string, s stage.Stage) error {
	return h.hooks.Register(position, target, s)
}

// resolveStages builds the effective stage order for one run: every core
// stage wrapped by its global hooks first, instance hooks second.
func (h *Humanizer) resolveStages(opts Options) []stage.Stage {
	core := []stage.Stage{
		stages.Typography{},
		stages.Fillers{},
		stages.Synonyms{CustomDict: opts.CustomDict},
		stages.Contractions{},
	}

	var resolved []stage.Stage
	for _, s := range core {
		resolved = append(resolved, globalHooks.For(stage.Before, s.Name())...)
		resolved = append(resolved, h.hooks.For(stage.Before, s.Name())...)
		resolved = append(resolved, s)
		resolved = append(resolved, globalHooks.For(stage.After, s.Name())...)
		resolved = append(resolved, h.hooks.For(stage.After, s.Name())...)
	}
	return resolved
}
