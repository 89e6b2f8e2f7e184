package compiler

import (
	"errors"
	"fmt"
)

// Compilation failure kinds. Every failure is fatal to the current
// compilation attempt: no partial plan is ever returned. Callers match kinds
// with errors.Is.
var (
	ErrUnknownScriptType         = errors.New("unknown script type")
	ErrMalformedScriptCommand    = errors.New("malformed script command")
	ErrDuplicateBuildExtension   = errors.New("duplicate build extension")
	ErrMultipleBundleScripts     = errors.New("multiple bundle scripts")
	ErrMissingBundleScript       = errors.New("missing bundle script")
	ErrInvalidPluginCapabilities = errors.New("invalid plugin capabilities")
	ErrPluginMissingCapability   = errors.New("plugin missing capability")
	ErrUnregisteredPlugin        = errors.New("unregistered plugin")
	ErrUnboundPluginReference    = errors.New("unbound plugin reference")
)

// CompileError wraps a failure kind with the offending script id or plugin
// module reference.
type CompileError struct {
	Kind     error
	ScriptID string
	Plugin   string
	Detail   string
}

// Error formats the failure with whichever identifiers are set.
func (e *CompileError) Error() string {
	msg := e.Kind.Error()
	if e.ScriptID != "" {
		msg = fmt.Sprintf("script %q: %s", e.ScriptID, msg)
	}
	if e.Plugin != "" {
		msg = fmt.Sprintf("%s (plugin %q)", msg, e.Plugin)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Unwrap exposes the failure kind for errors.Is.
func (e *CompileError) Unwrap() error {
	return e.Kind
}

func scriptErr(kind error, scriptID, format string, args ...interface{}) error {
	return &CompileError{
		Kind:     kind,
		ScriptID: scriptID,
		Detail:   fmt.Sprintf(format, args...),
	}
}

func pluginErr(kind error, scriptID, plugin, format string, args ...interface{}) error {
	return &CompileError{
		Kind:     kind,
		ScriptID: scriptID,
		Plugin:   plugin,
		Detail:   fmt.Sprintf(format, args...),
	}
}
