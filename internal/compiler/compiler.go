package compiler

import (
	"sort"

	"github.com/driftdev/drift/internal/plugins/builtin"
)

// Compile turns the raw script map and plugin list into an ordered plan.
//
// The pipeline runs in fixed stages over immutable snapshots: plugin
// contributions, key parsing with incremental validation, default injection,
// plugin binding, post-injection validation, priority sort. The first
// violation aborts the run; no partial plan is ever returned. Identical
// inputs always yield structurally identical plans.
func Compile(input Input) (*Plan, error) {
	contrib, err := applyPlugins(input.Scripts, input.Plugins)
	if err != nil {
		return nil, err
	}

	primary, watch := splitWatchKeys(contrib.scripts)

	// Map iteration order is randomized; consume keys sorted so the
	// incremental validator reports the same conflict on every run.
	ids := make([]string, 0, len(primary))
	for id := range primary {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	state := newDeclState()
	scripts := make([]CompiledScript, 0, len(ids)+2)

	for _, id := range ids {
		command := primary[id]

		key, err := parseScriptKey(id)
		if err != nil {
			return nil, err
		}

		cs := CompiledScript{
			ID:           key.id,
			Type:         key.typ,
			Match:        key.match,
			Command:      command,
			WatchCommand: watchCommandFor(watch, id, command),
		}

		switch key.typ {
		case ScriptMount:
			cs.Mount, err = parseMountCommand(id, command)
		case ScriptProxy:
			cs.Proxy, err = parseProxyCommand(id, command)
		}
		if err != nil {
			return nil, err
		}

		if err := state.observe(cs); err != nil {
			return nil, err
		}

		scripts = append(scripts, cs)
	}

	scripts = injectDefaults(scripts, state, input.Mode, builtin.NewTranspiler())

	if err := bindPlugins(scripts, contrib.byName); err != nil {
		return nil, err
	}

	if err := postValidate(scripts, input.Bundle); err != nil {
		return nil, err
	}

	sortScripts(scripts)

	return &Plan{
		Scripts:          scripts,
		KnownEntrypoints: mergeEntrypoints(input.KnownEntrypoints, contrib.entrypoints),
	}, nil
}

// mergeEntrypoints concatenates the install-declared entrypoints with the
// plugin-contributed ones, dropping duplicates while preserving order.
func mergeEntrypoints(declared, contributed []string) []string {
	seen := make(map[string]bool, len(declared)+len(contributed))
	var out []string
	for _, list := range [][]string{declared, contributed} {
		for _, ep := range list {
			if seen[ep] {
				continue
			}
			seen[ep] = true
			out = append(out, ep)
		}
	}
	return out
}
