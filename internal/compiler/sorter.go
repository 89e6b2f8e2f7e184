package compiler

import "sort"

// sortScripts establishes the total order the engine iterates: the
// web_modules mount first, then same-type entries lexicographically by id,
// then ascending type weight. The order is deterministic regardless of
// declaration order.
func sortScripts(scripts []CompiledScript) {
	sort.SliceStable(scripts, func(i, j int) bool {
		return scriptLess(scripts[i], scripts[j])
	})
}

func scriptLess(a, b CompiledScript) bool {
	// The dependency mount is checked explicitly in both directions, not
	// via weight.
	if a.ID == WebModulesScriptID {
		return b.ID != WebModulesScriptID
	}
	if b.ID == WebModulesScriptID {
		return false
	}
	if a.Type == b.Type {
		return a.ID < b.ID
	}
	return a.Type.Weight() < b.Type.Weight()
}
