// Package plugins defines the drift plugin model and the registry that owns
// plugin instances for the lifetime of the process.
//
// A plugin implements exactly one pipeline capability (build, transform, or
// bundle) by implementing the corresponding interface. Plugins are
// instantiated by the host before compilation; the compiler only binds them
// to script entries and never invokes a capability itself.
package plugins

import "context"

// Plugin is the base interface implemented by every drift plugin. Name
// returns the module reference used in script commands, for example
// "@drift/plugin-babel" or "./plugins/sass.js".
type Plugin interface {
	Name() string
}

// BuildPlugin compiles a source file into one or more output files. Scripts
// of type "build" whose command is a module reference bind to a BuildPlugin.
type BuildPlugin interface {
	Plugin

	// Build compiles a single source file. The returned map is keyed by
	// output extension (".js", ".css", ...).
	Build(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// TransformPlugin rewrites the output of an earlier build stage.
type TransformPlugin interface {
	Plugin

	// Transform receives built file contents and returns the rewritten form.
	Transform(ctx context.Context, req TransformRequest) (*TransformResult, error)
}

// BundlePlugin produces the final production bundle from the build output.
// Scripts of type "bundle" bind to a BundlePlugin.
type BundlePlugin interface {
	Plugin

	// Bundle bundles the built site in srcDir into destDir.
	Bundle(ctx context.Context, req BundleRequest) error
}

// DefaultScriptProvider is implemented by plugins that offer a build script
// the user may omit from configuration, for example "build:svelte". The
// compiler synthesizes the entry only when the user has not declared it.
type DefaultScriptProvider interface {
	DefaultBuildScript() string
}

// EntrypointProvider is implemented by plugins that contribute additional
// known entrypoint paths to the compiled plan.
type EntrypointProvider interface {
	KnownEntrypoints() []string
}

// BuildRequest describes a single source file handed to a BuildPlugin.
type BuildRequest struct {
	FilePath string
	Contents []byte
	IsDev    bool
}

// BuildResult maps output extensions to built file contents.
type BuildResult struct {
	Files map[string][]byte
}

// TransformRequest describes built output handed to a TransformPlugin.
type TransformRequest struct {
	URLPath  string
	Contents []byte
	IsDev    bool
}

// TransformResult carries the rewritten file contents.
type TransformResult struct {
	Contents []byte
}

// BundleRequest describes a bundling run handed to a BundlePlugin.
type BundleRequest struct {
	SrcDir           string
	DestDir          string
	KnownEntrypoints []string
}

// Capability identifies the single pipeline stage a plugin implements.
type Capability string

const (
	CapabilityBuild     Capability = "build"
	CapabilityTransform Capability = "transform"
	CapabilityBundle    Capability = "bundle"
)

// Capabilities returns the capability set implemented by p, in a fixed
// build/transform/bundle order. A well-formed plugin returns exactly one.
func Capabilities(p Plugin) []Capability {
	var caps []Capability
	if _, ok := p.(BuildPlugin); ok {
		caps = append(caps, CapabilityBuild)
	}
	if _, ok := p.(TransformPlugin); ok {
		caps = append(caps, CapabilityTransform)
	}
	if _, ok := p.(BundlePlugin); ok {
		caps = append(caps, CapabilityBundle)
	}
	return caps
}

// Has reports whether p implements the given capability.
func Has(p Plugin, c Capability) bool {
	switch c {
	case CapabilityBuild:
		_, ok := p.(BuildPlugin)
		return ok
	case CapabilityTransform:
		_, ok := p.(TransformPlugin)
		return ok
	case CapabilityBundle:
		_, ok := p.(BundlePlugin)
		return ok
	default:
		return false
	}
}
