package compiler

import "github.com/driftdev/drift/internal/plugins"

// pluginContributions is what the plugin pre-pass produces before any script
// key is parsed: a script map extended with plugin default build scripts,
// the aggregated entrypoints, and a name index for binding.
type pluginContributions struct {
	scripts     map[string]string
	entrypoints []string
	byName      map[string]plugins.Plugin
}

// applyPlugins validates every plugin descriptor and collects its
// contributions, in declaration order. A plugin exposing more than one of
// build/transform/bundle is rejected before any script entry referencing it
// is processed.
//
// A plugin's defaultBuildScript is synthesized only when the user neither
// declared that key nor pointed any existing script's command at the plugin;
// the user declaration always wins.
func applyPlugins(raw map[string]string, list []plugins.Plugin) (*pluginContributions, error) {
	contrib := &pluginContributions{
		scripts: make(map[string]string, len(raw)),
		byName:  make(map[string]plugins.Plugin, len(list)),
	}
	for k, v := range raw {
		contrib.scripts[k] = v
	}

	for _, p := range list {
		caps := plugins.Capabilities(p)
		if len(caps) > 1 {
			return nil, pluginErr(ErrInvalidPluginCapabilities, "", p.Name(), "plugin implements %d capabilities, at most one of build/transform/bundle is allowed", len(caps))
		}

		if ep, ok := p.(plugins.EntrypointProvider); ok {
			contrib.entrypoints = append(contrib.entrypoints, ep.KnownEntrypoints()...)
		}

		if _, seen := contrib.byName[p.Name()]; !seen {
			contrib.byName[p.Name()] = p
		}

		dsp, ok := p.(plugins.DefaultScriptProvider)
		if !ok {
			continue
		}
		scriptID := dsp.DefaultBuildScript()
		if scriptID == "" {
			continue
		}
		if _, declared := contrib.scripts[scriptID]; declared {
			continue
		}
		if commandReferences(contrib.scripts, p.Name()) {
			continue
		}
		contrib.scripts[scriptID] = p.Name()
	}

	return contrib, nil
}

// commandReferences reports whether any existing script command already
// points at the given plugin module reference.
func commandReferences(scripts map[string]string, name string) bool {
	for _, command := range scripts {
		if command == name {
			return true
		}
	}
	return false
}

// requiredCapability returns the capability a script type demands from a
// bound plugin.
func requiredCapability(t ScriptType) plugins.Capability {
	if t == ScriptBundle {
		return plugins.CapabilityBundle
	}
	return plugins.CapabilityBuild
}

// bindPlugins attaches registered plugins to build/bundle scripts whose
// command is a plugin module reference. A command that looks like a module
// path but matches no registered plugin is a hard failure, as is a matching
// plugin that lacks the required capability.
func bindPlugins(scripts []CompiledScript, byName map[string]plugins.Plugin) error {
	for i := range scripts {
		cs := &scripts[i]
		if cs.Type != ScriptBuild && cs.Type != ScriptBundle {
			continue
		}
		if cs.Plugin != nil {
			// Pre-bound by the default injector.
			continue
		}

		p, registered := byName[cs.Command]
		if !registered {
			if isModulePath(cs.Command) {
				return pluginErr(ErrUnregisteredPlugin, cs.ID, cs.Command, "no plugin with this module reference is registered")
			}
			continue
		}

		need := requiredCapability(cs.Type)
		if !plugins.Has(p, need) {
			return pluginErr(ErrPluginMissingCapability, cs.ID, cs.Command, "script requires the %s capability", need)
		}
		cs.Plugin = p
	}

	return nil
}
