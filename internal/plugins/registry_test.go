package plugins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct{ name string }

func (p *stubPlugin) Name() string { return p.name }

type stubBuildPlugin struct{ stubPlugin }

func (p *stubBuildPlugin) Build(context.Context, BuildRequest) (*BuildResult, error) {
	return &BuildResult{}, nil
}

type stubTransformPlugin struct{ stubPlugin }

func (p *stubTransformPlugin) Transform(context.Context, TransformRequest) (*TransformResult, error) {
	return &TransformResult{}, nil
}

type stubEverythingPlugin struct{ stubPlugin }

func (p *stubEverythingPlugin) Build(context.Context, BuildRequest) (*BuildResult, error) {
	return &BuildResult{}, nil
}

func (p *stubEverythingPlugin) Transform(context.Context, TransformRequest) (*TransformResult, error) {
	return &TransformResult{}, nil
}

func (p *stubEverythingPlugin) Bundle(context.Context, BundleRequest) error {
	return nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	first := &stubBuildPlugin{stubPlugin{name: "@drift/plugin-a"}}
	second := &stubTransformPlugin{stubPlugin{name: "@drift/plugin-b"}}

	require.NoError(t, registry.Register(first))
	require.NoError(t, registry.Register(second))

	got, ok := registry.Get("@drift/plugin-a")
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = registry.Get("@drift/plugin-missing")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubBuildPlugin{stubPlugin{name: "@drift/plugin-a"}}))
	err := registry.Register(&stubTransformPlugin{stubPlugin{name: "@drift/plugin-a"}})
	assert.Error(t, err)
}

func TestRegistryPreservesOrder(t *testing.T) {
	registry := NewRegistry()

	names := []string{"@drift/plugin-c", "@drift/plugin-a", "@drift/plugin-b"}
	for _, name := range names {
		require.NoError(t, registry.Register(&stubBuildPlugin{stubPlugin{name: name}}))
	}

	var got []string
	for _, p := range registry.List() {
		got = append(got, p.Name())
	}
	assert.Equal(t, names, got)
	assert.Equal(t, 3, registry.Len())
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, []Capability{CapabilityBuild},
		Capabilities(&stubBuildPlugin{stubPlugin{name: "a"}}))
	assert.Equal(t, []Capability{CapabilityTransform},
		Capabilities(&stubTransformPlugin{stubPlugin{name: "b"}}))
	assert.Empty(t, Capabilities(&stubPlugin{name: "c"}))
	assert.Len(t, Capabilities(&stubEverythingPlugin{stubPlugin{name: "d"}}), 3)
}

func TestHas(t *testing.T) {
	build := &stubBuildPlugin{stubPlugin{name: "a"}}

	assert.True(t, Has(build, CapabilityBuild))
	assert.False(t, Has(build, CapabilityTransform))
	assert.False(t, Has(build, CapabilityBundle))
	assert.False(t, Has(build, Capability("other")))
}
