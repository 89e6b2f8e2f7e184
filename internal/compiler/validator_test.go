package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclStateObserve(t *testing.T) {
	state := newDeclState()

	require.NoError(t, state.observe(CompiledScript{
		ID: "build:js,jsx", Type: ScriptBuild, Match: []string{"js", "jsx"},
	}))
	require.NoError(t, state.observe(CompiledScript{
		ID: "build:ts", Type: ScriptBuild, Match: []string{"ts"},
	}))

	err := state.observe(CompiledScript{
		ID: "build:jsx,vue", Type: ScriptBuild, Match: []string{"jsx", "vue"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateBuildExtension))

	claimed := state.claimedExtensions()
	assert.True(t, claimed["js"])
	assert.True(t, claimed["ts"])
}

func TestDeclStateBundleCount(t *testing.T) {
	state := newDeclState()

	require.NoError(t, state.observe(CompiledScript{ID: "bundle:*", Type: ScriptBundle}))
	assert.True(t, state.hasBundle())

	err := state.observe(CompiledScript{ID: "bundle:dist", Type: ScriptBundle})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMultipleBundleScripts))
}

func TestIsModulePath(t *testing.T) {
	assert.True(t, isModulePath("@drift/plugin-babel"))
	assert.True(t, isModulePath("./plugins/sass.js"))
	assert.True(t, isModulePath("../shared/plugin.js"))
	assert.False(t, isModulePath("babel --stdin"))
	assert.False(t, isModulePath("drift:transpile"))
	assert.False(t, isModulePath(""))
}

func TestPostValidateUnboundReference(t *testing.T) {
	scripts := []CompiledScript{
		{ID: "build:svelte", Type: ScriptBuild, Command: "@drift/plugin-svelte"},
	}

	err := postValidate(scripts, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnboundPluginReference))
}

func TestPostValidateShellCommandsPass(t *testing.T) {
	scripts := []CompiledScript{
		{ID: "build:js", Type: ScriptBuild, Command: "babel --stdin"},
		{ID: "run:lint", Type: ScriptRun, Command: "eslint src"},
	}

	assert.NoError(t, postValidate(scripts, false))
}

func TestPostValidateMissingBundle(t *testing.T) {
	scripts := []CompiledScript{
		{ID: "build:js", Type: ScriptBuild, Command: "babel --stdin"},
	}

	err := postValidate(scripts, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBundleScript))

	scripts = append(scripts, CompiledScript{ID: "bundle:*", Type: ScriptBundle, Command: "webpack"})
	assert.NoError(t, postValidate(scripts, true))
}
