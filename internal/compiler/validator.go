package compiler

import "strings"

// declState tracks cross-entry invariants while user declarations are
// consumed. Validation is fail-fast: the first violation aborts the run.
type declState struct {
	// claimed maps each build extension to the script id that owns it.
	claimed  map[string]string
	bundleID string
}

func newDeclState() *declState {
	return &declState{claimed: make(map[string]string)}
}

// observe enforces the incremental invariants: pairwise-disjoint build
// extensions and at most one bundle entry.
func (s *declState) observe(cs CompiledScript) error {
	switch cs.Type {
	case ScriptBuild:
		for _, ext := range cs.Match {
			if owner, taken := s.claimed[ext]; taken {
				return scriptErr(ErrDuplicateBuildExtension, cs.ID, "extension %q already claimed by %q", ext, owner)
			}
			s.claimed[ext] = cs.ID
		}
	case ScriptBundle:
		if s.bundleID != "" {
			return scriptErr(ErrMultipleBundleScripts, cs.ID, "bundle script already declared as %q", s.bundleID)
		}
		s.bundleID = cs.ID
	}
	return nil
}

// claimedExtensions returns the set of build extensions owned so far.
func (s *declState) claimedExtensions() map[string]bool {
	exts := make(map[string]bool, len(s.claimed))
	for ext := range s.claimed {
		exts[ext] = true
	}
	return exts
}

// hasBundle reports whether a bundle entry has been observed.
func (s *declState) hasBundle() bool {
	return s.bundleID != ""
}

// isModulePath reports whether a command string references a plugin module
// rather than a shell command. npm scoped packages start with "@", local
// plugin files with ".".
func isModulePath(command string) bool {
	return strings.HasPrefix(command, "@") || strings.HasPrefix(command, ".")
}

// postValidate runs after defaults are injected and plugins bound. Every
// build/bundle script whose command is a module reference must have resolved
// to a plugin with the required capability, and a bundle entry must exist
// when bundling was requested.
func postValidate(scripts []CompiledScript, bundleRequested bool) error {
	bundleFound := false

	for i := range scripts {
		cs := &scripts[i]
		switch cs.Type {
		case ScriptBuild, ScriptBundle:
			if isModulePath(cs.Command) && cs.Plugin == nil {
				return pluginErr(ErrUnboundPluginReference, cs.ID, cs.Command, "no bound plugin provides the %s capability", cs.Type)
			}
		}
		if cs.Type == ScriptBundle {
			bundleFound = true
		}
	}

	if bundleRequested && !bundleFound {
		return scriptErr(ErrMissingBundleScript, "", "bundling was requested but no bundle:* script is declared and no bundle plugin is registered")
	}

	return nil
}
