package scene

import (
	"fmt"
	"sync"

	"github.com/hupe1980/framemesh/lifecycle"
	"github.com/hupe1980/framemesh/logging"
	"github.com/hupe1980/framemesh/object"
)

// Registry maps loaded scenes to their scene-scoped lifecycles. Create one
// per Host; it hooks the host's unload notifications at construction.
//
// The table is the module's only shared mutable state besides the binding
// observers, so it carries its own mutex even though the surrounding model
// is single-threaded, per the reimplementation notes for concurrent hosts.
type Registry struct {
	mu      sync.Mutex
	host    *object.Host
	logger  logging.Logger
	entries map[int]*lifecycle.Lifecycle
}

// NewRegistry creates a Registry bound to h and subscribes it to h's
// scene-unload notifications. A nil logger defaults to NoOp.
func NewRegistry(h *object.Host, logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	r := &Registry{
		host:    h,
		logger:  logger,
		entries: map[int]*lifecycle.Lifecycle{},
	}
	h.OnSceneUnloaded(r.onUnload)

	return r
}

// Get returns the scene-scoped lifecycle for s, creating and storing it on
// first request. The second result is false, with a nil lifecycle, when s is
// invalid or not loaded; no entry is created in that case.
func (r *Registry) Get(s *object.Scene) (*lifecycle.Lifecycle, bool) {
	if !s.Loaded() {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lc, ok := r.entries[s.Handle()]; ok {
		return lc, true
	}

	lc := r.host.NewSceneLifecycle(s)
	if lc == nil {
		return nil, false
	}

	handle := s.Handle()
	r.entries[handle] = lc

	// A scene lifecycle removes its own entry when destroyed, whether by
	// the unload pass or by an explicit Destroy from outside.
	lc.OnDestroy(func() { r.drop(handle) })

	r.logger.Debug("scene lifecycle created", "scene", s.Name(), "handle", handle)

	return lc, true
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) drop(handle int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, handle)
}

func (r *Registry) onUnload(s *object.Scene) {
	r.mu.Lock()
	lc, ok := r.entries[s.Handle()]
	r.mu.Unlock()

	if ok {
		lc.Destroy()
	}

	r.check()
}

// check enforces the registry invariant after every unload pass: no entry
// may map to an already-destroyed lifecycle. A violation is a framework
// bug, not a caller error.
func (r *Registry) check() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for handle, lc := range r.entries {
		if lc.Destroyed() {
			panic(fmt.Sprintf("framemesh: scene registry entry %d maps to destroyed lifecycle %q", handle, lc.Name()))
		}
	}
}
