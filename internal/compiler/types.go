// Package compiler turns a raw script map and a plugin list into an ordered,
// fully-validated execution plan. The compilation is a single synchronous
// pass: parse keys, extract mount/proxy arguments, apply plugin
// contributions, inject implicit defaults, validate, sort. The produced Plan
// is immutable and safe for concurrent readers; a config reload builds a
// fresh plan and swaps it wholesale.
//
// The compiler performs no I/O and never executes a command. Plugin
// instantiation and config-file loading are the host's responsibility.
package compiler

import "github.com/driftdev/drift/internal/plugins"

// ScriptType classifies a script entry. The set is closed: any other type
// segment in a script key is a hard compilation failure.
type ScriptType string

const (
	ScriptProxy  ScriptType = "proxy"
	ScriptMount  ScriptType = "mount"
	ScriptRun    ScriptType = "run"
	ScriptBuild  ScriptType = "build"
	ScriptBundle ScriptType = "bundle"
)

// Weight returns the ordering weight of the type. Weights are used only by
// the priority sorter, never for execution semantics. Bundling always runs
// last, hence the gap.
func (t ScriptType) Weight() int {
	switch t {
	case ScriptProxy:
		return 1
	case ScriptMount:
		return 2
	case ScriptRun:
		return 3
	case ScriptBuild:
		return 4
	case ScriptBundle:
		return 100
	default:
		return 0
	}
}

// ParseScriptType parses the type segment of a script key.
func ParseScriptType(s string) (ScriptType, bool) {
	switch ScriptType(s) {
	case ScriptProxy, ScriptMount, ScriptRun, ScriptBuild, ScriptBundle:
		return ScriptType(s), true
	default:
		return "", false
	}
}

// Mode selects the dependency directory for the implicit web_modules mount.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Dependency directories served under /web_modules. Production builds read
// the build-time install output; every other mode reads the dev install.
const (
	DevDependenciesDir   = "node_modules/.cache/drift/dev"
	BuildDependenciesDir = "node_modules/.cache/drift/build"
)

// WebModulesScriptID is the id of the implicit dependency mount. The sorter
// places this entry first unconditionally.
const WebModulesScriptID = "mount:web_modules"

// MountArgs holds the parsed arguments of a mount command.
type MountArgs struct {
	FromDisk string
	ToURL    string
}

// ProxyArgs holds the parsed arguments of a proxy command.
type ProxyArgs struct {
	FromURL string
	ToURL   string
}

// CompiledScript is one fully-resolved entry of the plan.
//
// Match holds file extensions for build/bundle entries and a single
// directory token for mount entries; it is unused for proxy/run. Mount and
// Proxy are set only for the corresponding types. Plugin is a non-owning
// reference into the host's plugin registry.
type CompiledScript struct {
	ID           string
	Type         ScriptType
	Match        []string
	Command      string
	WatchCommand string
	Mount        *MountArgs
	Proxy        *ProxyArgs
	Plugin       plugins.Plugin
}

// Plan is the ordered result of one compilation run. Downstream consumers
// iterate Scripts in order and use the first matching rule. No field is
// mutated after Compile returns.
type Plan struct {
	Scripts          []CompiledScript
	KnownEntrypoints []string
}

// Input is the complete contract supplied by the config-loading layer.
type Input struct {
	// Scripts maps raw "<type>:<matchList>" keys to command strings,
	// optionally paired with "<key>::watch" siblings.
	Scripts map[string]string

	// Plugins are already-instantiated plugin objects, in declaration order.
	Plugins []plugins.Plugin

	// Mode selects the dependency directory for the implicit mount.
	Mode Mode

	// Bundle demands that a bundle-type entry exist after compilation.
	Bundle bool

	// KnownEntrypoints are entrypoint paths declared by the install step,
	// merged with the entrypoints contributed by plugins.
	KnownEntrypoints []string
}
