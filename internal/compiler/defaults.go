package compiler

import (
	"fmt"
	"strings"

	"github.com/driftdev/drift/internal/plugins"
)

// BuiltinTranspilerCommand is the sentinel command of the implicit default
// build script. It is not a module path, so the binder never attempts to
// resolve it.
const BuiltinTranspilerCommand = "drift:transpile"

// defaultBuildExtensions is the JS/TS family the built-in transpiler covers
// when the user's build scripts leave it unclaimed.
var defaultBuildExtensions = []string{"js", "jsx", "ts", "tsx"}

// injectDefaults appends the two implicit fallback entries. Injection never
// overrides a user-declared id and happens before the post-injection
// validation pass and before sorting.
func injectDefaults(scripts []CompiledScript, state *declState, mode Mode, transpiler plugins.Plugin) []CompiledScript {
	if !hasScript(scripts, WebModulesScriptID) {
		scripts = append(scripts, webModulesMount(mode))
	}

	claimed := state.claimedExtensions()
	var remaining []string
	for _, ext := range defaultBuildExtensions {
		if !claimed[ext] {
			remaining = append(remaining, ext)
		}
	}
	if len(remaining) > 0 {
		scripts = append(scripts, CompiledScript{
			ID:      "build:" + strings.Join(remaining, ","),
			Type:    ScriptBuild,
			Match:   remaining,
			Command: BuiltinTranspilerCommand,
			Plugin:  transpiler,
		})
	}

	return scripts
}

// webModulesMount builds the implicit dependency mount. Production mode
// serves the build-time install output, every other mode the dev install.
func webModulesMount(mode Mode) CompiledScript {
	fromDisk := DevDependenciesDir
	if mode == ModeProduction {
		fromDisk = BuildDependenciesDir
	}

	return CompiledScript{
		ID:      WebModulesScriptID,
		Type:    ScriptMount,
		Match:   []string{"web_modules"},
		Command: fmt.Sprintf("mount %s --to /web_modules", fromDisk),
		Mount:   &MountArgs{FromDisk: fromDisk, ToURL: "/web_modules"},
	}
}

func hasScript(scripts []CompiledScript, id string) bool {
	for i := range scripts {
		if scripts[i].ID == id {
			return true
		}
	}
	return false
}
