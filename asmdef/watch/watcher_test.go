package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/framemesh/asmdef"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()

	rs := &asmdef.RuleSet{Rules: []asmdef.Rule{{
		Assembly: "MyGame.*",
		Require:  []string{"Unity.Burst"},
	}}}

	w, err := New(asmdef.NewPatcher(rs, nil), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	return w
}

func TestWatcher_Relevant(t *testing.T) {
	w := newTestWatcher(t)

	assert.True(t, w.Relevant(filepath.Join("Assets", "MyGame.Core.asmdef")))
	assert.True(t, w.Relevant(filepath.Join("Assets", "UPPER.ASMDEF")))
	assert.False(t, w.Relevant(filepath.Join("Assets", "script.cs")))
	assert.False(t, w.Relevant(filepath.Join("Library", "MyGame.Core.asmdef")))
}

func TestWatcher_Ignored(t *testing.T) {
	w := newTestWatcher(t)

	assert.True(t, w.Ignored(filepath.Join("proj", "Library", "sub")))
	assert.True(t, w.Ignored(filepath.Join("proj", ".git")))
	assert.False(t, w.Ignored(filepath.Join("proj", "Assets")))
}

func TestWatcher_WriteEventPatchesAfterDebounce(t *testing.T) {
	w := newTestWatcher(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "MyGame.Core.asmdef")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "MyGame.Core"}`), 0o644))

	w.handle(fsnotify.Event{Name: path, Op: fsnotify.Write})
	require.Len(t, w.pending, 1)

	// Not yet quiet for a full debounce window.
	w.flush(time.Now(), w.Debounce)
	assert.Len(t, w.pending, 1)

	w.flush(time.Now().Add(w.Debounce+time.Second), w.Debounce)
	assert.Empty(t, w.pending)

	f, err := asmdef.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unity.Burst"}, f.References())
}

func TestWatcher_IrrelevantEventsAreDropped(t *testing.T) {
	w := newTestWatcher(t)

	w.handle(fsnotify.Event{Name: "Assets/script.cs", Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: "Assets/MyGame.Core.asmdef", Op: fsnotify.Remove})

	assert.Empty(t, w.pending)
}

func TestWatcher_AddWatchesTree(t *testing.T) {
	w := newTestWatcher(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Assets", "Core"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Library"), 0o755))

	require.NoError(t, w.Add(dir))
}
