package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantType  ScriptType
		wantMatch []string
		wantErr   error
	}{
		{
			name:      "build with extension list",
			key:       "build:js,jsx",
			wantType:  ScriptBuild,
			wantMatch: []string{"js", "jsx"},
		},
		{
			name:      "mount with single token",
			key:       "mount:src",
			wantType:  ScriptMount,
			wantMatch: []string{"src"},
		},
		{
			name:      "proxy",
			key:       "proxy:api",
			wantType:  ScriptProxy,
			wantMatch: []string{"api"},
		},
		{
			name:      "run",
			key:       "run:lint",
			wantType:  ScriptRun,
			wantMatch: []string{"lint"},
		},
		{
			name:      "bundle",
			key:       "bundle:*",
			wantType:  ScriptBundle,
			wantMatch: []string{"*"},
		},
		{
			name:      "match list splits only on commas after first colon",
			key:       "proxy:api:v2",
			wantType:  ScriptProxy,
			wantMatch: []string{"api:v2"},
		},
		{
			name:    "unknown type",
			key:     "deploy:prod",
			wantErr: ErrUnknownScriptType,
		},
		{
			name:    "empty type segment",
			key:     ":js",
			wantErr: ErrUnknownScriptType,
		},
		{
			name:     "missing match list",
			key:      "run:",
			wantType: ScriptRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := parseScriptKey(tt.key)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.key, key.id)
			assert.Equal(t, tt.wantType, key.typ)
			assert.Equal(t, tt.wantMatch, key.match)
		})
	}
}

func TestSplitWatchKeys(t *testing.T) {
	raw := map[string]string{
		"build:js,jsx":        "babel --stdin",
		"build:js,jsx::watch": "babel --watch",
		"run:lint":            "eslint src",
	}

	primary, watch := splitWatchKeys(raw)

	assert.Equal(t, map[string]string{
		"build:js,jsx": "babel --stdin",
		"run:lint":     "eslint src",
	}, primary)
	assert.Equal(t, map[string]string{
		"build:js,jsx": "babel --watch",
	}, watch)
}

func TestWatchCommandFor(t *testing.T) {
	watch := map[string]string{
		"build:js": "watchexec -- $1",
		"run:tsc":  "tsc --watch",
	}

	assert.Equal(t, "watchexec -- babel src", watchCommandFor(watch, "build:js", "babel src"))
	assert.Equal(t, "tsc --watch", watchCommandFor(watch, "run:tsc", "tsc"))
	assert.Equal(t, "", watchCommandFor(watch, "run:other", "anything"))
}
