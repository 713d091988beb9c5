package object

import (
	"github.com/google/uuid"
	"github.com/hupe1980/framemesh/lifecycle"
	"github.com/hupe1980/framemesh/logging"
)

// durableSceneName is the name of the partition exempt from scene unloads.
const durableSceneName = "durable"

// Host is the reference frame driver and object world. It owns the scenes,
// ticks every auto-tick lifecycle once per frame stage, and drains the
// deferred-destroy queue at EndFrame. Host follows the single-threaded
// cooperative model; all calls must come from one logical control thread.
type Host struct {
	logger logging.Logger

	scenes     map[int]*Scene
	nextHandle int
	durable    *Scene
	active     *Scene

	lifecycles   []*lifecycle.Lifecycle
	destroyQueue []*Object
	unloadHooks  []func(*Scene)

	frame uint64
}

// NewHost creates a Host with the durable scene loaded and active. A nil
// logger defaults to NoOp.
func NewHost(logger logging.Logger) *Host {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	h := &Host{
		logger: logger,
		scenes: map[int]*Scene{},
	}
	h.durable = h.newScene(durableSceneName)
	h.active = h.durable

	return h
}

func (h *Host) newScene(name string) *Scene {
	h.nextHandle++
	s := &Scene{handle: h.nextHandle, name: name, loaded: true, host: h}
	s.root = &Object{
		id:     uuid.NewString(),
		name:   name + "-root",
		active: true,
		isRoot: true,
		scene:  s,
		host:   h,
	}
	h.scenes[s.handle] = s

	return s
}

// Frame returns the number of completed frames.
func (h *Host) Frame() uint64 { return h.frame }

// DurableScene returns the cross-scene partition. Objects promoted there
// outlive every scene unload.
func (h *Host) DurableScene() *Scene { return h.durable }

// ActiveScene returns the scene new objects are created in by default.
func (h *Host) ActiveScene() *Scene { return h.active }

// SetActiveScene makes s the default scene for new objects. Unloaded or
// invalid scenes are ignored.
func (h *Host) SetActiveScene(s *Scene) {
	if s.Loaded() && s.host == h {
		h.active = s
	}
}

// LoadScene creates and loads a new scene and makes it active.
func (h *Host) LoadScene(name string) *Scene {
	s := h.newScene(name)
	h.active = s
	h.logger.Info("scene loaded", "scene", name, "handle", s.handle)

	return s
}

// UnloadScene tears down s: unload hooks run first (destroying the scene's
// scoped lifecycle, which fires its signal and unwinds bindings in LIFO
// order), then every object still resident in s is finalized immediately.
// The durable scene and scenes not currently loaded are ignored.
func (h *Host) UnloadScene(s *Scene) {
	if !s.Loaded() || s.host != h || s == h.durable {
		return
	}

	for _, fn := range h.unloadHooks {
		fn(s)
	}

	destroyed := 0
	for _, top := range s.Objects() {
		destroyed += h.finalize(top)
	}

	s.loaded = false
	delete(h.scenes, s.handle)
	if h.active == s {
		h.active = h.durable
	}

	h.logger.Info("scene unloaded", "scene", s.name, "destroyed", destroyed)
}

// OnSceneUnloaded registers fn to run at the start of every UnloadScene
// call, before resident objects are finalized.
func (h *Host) OnSceneUnloaded(fn func(*Scene)) {
	if fn != nil {
		h.unloadHooks = append(h.unloadHooks, fn)
	}
}

// NewObject creates an active object under the root of s (the active scene
// when s is nil).
func (h *Host) NewObject(name string, s *Scene) *Object {
	if s == nil || !s.Loaded() {
		s = h.active
	}

	o := &Object{
		id:     uuid.NewString(),
		name:   name,
		active: true,
		scene:  s,
		host:   h,
		parent: s.root,
	}
	s.root.children = append(s.root.children, o)

	return o
}

// CreateLifecycle allocates a container object holding a new lifecycle and
// returns the lifecycle. The container is created in the active scene, or in
// the durable scene when retain is set, marking it to survive scene
// transitions.
func (h *Host) CreateLifecycle(name string, retain bool) *lifecycle.Lifecycle {
	s := h.active
	if retain {
		s = h.durable
	}

	opts := []lifecycle.Option{lifecycle.WithLogger(h.logger)}
	if retain {
		opts = append(opts, lifecycle.Durable())
	}

	return h.attachLifecycle(h.NewObject(name, s), opts...)
}

// NewSceneLifecycle allocates the scene-scoped lifecycle for s: a container
// object resident in s holding a lifecycle that only the scene's unload (or
// an explicit Destroy) tears down.
func (h *Host) NewSceneLifecycle(s *Scene) *lifecycle.Lifecycle {
	if !s.Loaded() || s.host != h {
		return nil
	}

	return h.attachLifecycle(
		h.NewObject("scene-lifecycle-"+s.name, s),
		lifecycle.WithLogger(h.logger), lifecycle.SceneScoped(),
	)
}

func (h *Host) attachLifecycle(container *Object, opts ...lifecycle.Option) *lifecycle.Lifecycle {
	lc := lifecycle.New(container.name, opts...)
	lc.SetResidency(container.scene.Handle(), container.scene == h.durable)
	container.lc = lc

	h.lifecycles = append(h.lifecycles, lc)
	lc.OnDestroy(func() {
		h.detachLifecycle(lc)
		container.DeepDestroy()
	})

	return lc
}

func (h *Host) detachLifecycle(lc *lifecycle.Lifecycle) {
	for i, cur := range h.lifecycles {
		if cur == lc {
			h.lifecycles = append(h.lifecycles[:i], h.lifecycles[i+1:]...)
			return
		}
	}
}

// MakeDurable moves o's subtree into the durable scene so that its
// destruction order is determined purely by binding order instead of racing
// against a scene unload. Roots cannot be promoted.
func (h *Host) MakeDurable(o *Object) {
	if o == nil || o.isRoot || o.destroyed || o.scene == h.durable {
		return
	}
	o.SetParent(h.durable.root)
}

// Find returns the first active object with the given name across all
// loaded scenes, nil if none. Doomed objects are invisible: deep destroy
// renamed and deactivated them before queueing.
func (h *Host) Find(name string) *Object {
	for _, s := range h.scenes {
		if o := findIn(s.root, name); o != nil {
			return o
		}
	}
	return nil
}

func findIn(o *Object, name string) *Object {
	for _, c := range o.children {
		if c.active && c.name == name {
			return c
		}
		if found := findIn(c, name); found != nil {
			return found
		}
	}
	return nil
}

// FindWithTag returns all active objects carrying the given tag across all
// loaded scenes.
func (h *Host) FindWithTag(tag string) []*Object {
	var out []*Object
	if tag == "" {
		return out
	}
	for _, s := range h.scenes {
		out = collectTag(s.root, tag, out)
	}
	return out
}

func collectTag(o *Object, tag string, out []*Object) []*Object {
	for _, c := range o.children {
		if c.active && c.tag == tag {
			out = append(out, c)
		}
		out = collectTag(c, tag, out)
	}
	return out
}

// Lifecycles returns a snapshot of all live attached lifecycles.
func (h *Host) Lifecycles() []*lifecycle.Lifecycle {
	out := make([]*lifecycle.Lifecycle, len(h.lifecycles))
	copy(out, h.lifecycles)
	return out
}

// Tick runs one full frame: FixedUpdate, Update and LateUpdate on every
// auto-tick lifecycle, then EndFrame. Lifecycles with auto tick disabled are
// skipped so a coordinating component can drive their phases itself.
func (h *Host) Tick() {
	for _, lc := range h.Lifecycles() {
		if lc.AutoTick() {
			lc.FixedUpdate()
		}
	}
	for _, lc := range h.Lifecycles() {
		if lc.AutoTick() {
			lc.Update()
		}
	}
	for _, lc := range h.Lifecycles() {
		if lc.AutoTick() {
			lc.LateUpdate()
		}
	}

	h.EndFrame()
}

func (h *Host) deferDestroy(o *Object) {
	h.destroyQueue = append(h.destroyQueue, o)
}

// EndFrame drains the deferred-destroy queue, finalizing every doomed
// object, and advances the frame counter. Finalizing may doom further
// objects (a destroyed lifecycle dooms its container); the queue is drained
// until empty.
func (h *Host) EndFrame() {
	for len(h.destroyQueue) > 0 {
		queue := h.destroyQueue
		h.destroyQueue = nil
		for _, o := range queue {
			h.finalize(o)
		}
	}
	h.frame++
}

// finalize destroys o and its subtree immediately and reports how many
// objects were destroyed.
func (h *Host) finalize(o *Object) int {
	if o.destroyed {
		return 0
	}
	o.destroyed = true
	o.active = false

	if o.lc != nil && !o.lc.Destroyed() {
		o.lc.Destroy()
	}
	for _, c := range o.Components() {
		c.Remove()
	}

	n := 1
	for _, child := range o.Children() {
		n += h.finalize(child)
	}

	o.detach()
	o.children = nil

	return n
}
