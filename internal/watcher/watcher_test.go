package watcher

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherDebouncesBursts(t *testing.T) {
	cw, err := NewConfigWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer cw.Close()

	var mu sync.Mutex
	var calls [][]string
	cw.AddHandler(func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, paths)
	})

	// A burst of changes within the debounce window collapses into a single
	// handler invocation.
	cw.record("/tmp/.drift.yml")
	cw.record("/tmp/.drift.yml")
	cw.record("/tmp/other.yml")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	got := calls[0]
	sort.Strings(got)
	assert.Equal(t, []string{"/tmp/.drift.yml", "/tmp/other.yml"}, got)
}

func TestConfigWatcherSeparateBursts(t *testing.T) {
	cw, err := NewConfigWatcher(20 * time.Millisecond)
	require.NoError(t, err)
	defer cw.Close()

	var mu sync.Mutex
	var calls int
	cw.AddHandler(func([]string) {
		mu.Lock()
		defer mu.Unlock()
		calls++
	})

	cw.record("/tmp/.drift.yml")
	time.Sleep(60 * time.Millisecond)
	cw.record("/tmp/.drift.yml")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 2
	}, time.Second, 10*time.Millisecond)
}
