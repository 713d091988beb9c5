package lifecycle

import (
	"github.com/google/uuid"
	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/logging"
	"github.com/hupe1980/framemesh/signal"
)

// noResidency marks a lifecycle that is not attached to any scene.
const noResidency = 0

// Lifecycle multiplexes staged update callbacks and lifetime ownership for
// one logical owner. See the package documentation for the scheduling and
// teardown contract.
type Lifecycle struct {
	id          string
	name        string
	sceneScoped bool
	durable     bool
	autoTick    bool
	destroyed   bool

	// residency is the handle of the scene the owning container lives in,
	// noResidency when unattached.
	residency int

	slots [core.LoopCount][core.PhaseCount]core.SlotList

	sig       *signal.Signal
	onDestroy []func()

	logger logging.Logger
}

// Option mutates construction-time settings of a Lifecycle.
type Option func(*Lifecycle)

// WithLogger sets the logger. Defaults to a NoOpLogger.
func WithLogger(l logging.Logger) Option {
	return func(lc *Lifecycle) {
		if l != nil {
			lc.logger = l
		}
	}
}

// SceneScoped marks the lifecycle as owned by a scene. Scene-scoped
// lifecycles may own other lifetimes but can never be bound as a dependent.
func SceneScoped() Option {
	return func(lc *Lifecycle) { lc.sceneScoped = true }
}

// Durable marks the lifecycle's container as exempt from scene-unload
// destruction.
func Durable() Option {
	return func(lc *Lifecycle) { lc.durable = true }
}

// New creates an Active lifecycle with automatic ticking enabled.
func New(name string, opts ...Option) *Lifecycle {
	lc := &Lifecycle{
		id:        uuid.NewString(),
		name:      name,
		autoTick:  true,
		residency: noResidency,
		logger:    logging.NoOpLogger{},
	}

	for _, opt := range opts {
		opt(lc)
	}

	return lc
}

// ID returns the unique identifier assigned at creation.
func (l *Lifecycle) ID() string { return l.id }

// Name returns the name given at creation.
func (l *Lifecycle) Name() string { return l.name }

// SceneScoped reports whether this lifecycle is owned by a scene.
func (l *Lifecycle) SceneScoped() bool { return l.sceneScoped }

// Durable reports whether the owning container survives scene unloads.
func (l *Lifecycle) Durable() bool { return l.durable }

// Destroyed reports whether the lifecycle has completed its terminal
// transition.
func (l *Lifecycle) Destroyed() bool { return l.destroyed }

// AutoTick reports whether a host frame driver should tick this lifecycle.
func (l *Lifecycle) AutoTick() bool { return l.autoTick }

// SetAutoTick enables or disables host-driven ticking. A coordinator that
// wants to drive phases in a custom global order disables auto ticking and
// calls the tick entry points itself.
func (l *Lifecycle) SetAutoTick(v bool) { l.autoTick = v }

// SetResidency records the scene the owning container lives in. durable
// additionally marks the container as surviving scene unloads. Hosts call
// this at attach time and after a durable promotion.
func (l *Lifecycle) SetResidency(sceneHandle int, durable bool) {
	l.residency = sceneHandle
	l.durable = durable
}

// Residency returns the owning container's scene handle (0 when unattached)
// and whether the container is durable.
func (l *Lifecycle) Residency() (int, bool) { return l.residency, l.durable }

// Signal returns the lifecycle's owned cancellation signal, creating it
// lazily on first use. There is exactly one signal per lifecycle; it fires
// exactly once, at Destroy. A signal requested after Destroy is returned
// already fired, so subscriptions run synchronously.
func (l *Lifecycle) Signal() *signal.Signal {
	if l.sig == nil {
		l.sig = signal.New()
		if l.destroyed {
			l.sig.Fire()
		}
	}
	return l.sig
}

// OnDestroy registers fn to run during Destroy, after the phase lists are
// cleared and the signal has fired. Registries use this to drop their entry
// for the lifecycle.
func (l *Lifecycle) OnDestroy(fn func()) {
	if fn == nil {
		return
	}
	if l.destroyed {
		fn()
		return
	}
	l.onDestroy = append(l.onDestroy, fn)
}

// Register appends fn to the slot list of the given loop and phase and
// returns the handle under which it was stored; pass that handle to Remove.
// If cancel is non-nil, the handle is removed from the same list when the
// signal fires. A signal that has already fired removes it synchronously,
// making the registration equivalent to never registering. A nil fn returns
// nil. Registering on a destroyed lifecycle panics with
// core.ErrLifecycleDestroyed.
func (l *Lifecycle) Register(loop core.Loop, phase core.Phase, fn core.Action, cancel *signal.Signal) *core.Action {
	if fn == nil {
		return nil
	}
	if l.destroyed {
		panic(core.ErrLifecycleDestroyed)
	}

	list := &l.slots[loop][phase]
	stored := list.Add(&fn)

	if cancel != nil {
		cancel.Subscribe(func() { list.Remove(stored) })
	}

	return stored
}

// Remove deletes a previously registered handle from the given loop and
// phase. Removing nil or an absent handle is a no-op.
func (l *Lifecycle) Remove(loop core.Loop, phase core.Phase, a *core.Action) {
	l.slots[loop][phase].Remove(a)
}

// Actions returns a snapshot of the handles currently registered for the
// given loop and phase.
func (l *Lifecycle) Actions(loop core.Loop, phase core.Phase) []*core.Action {
	return l.slots[loop][phase].GetActions()
}

// Update fires the five Update phases in order. A destroyed lifecycle
// ignores ticks.
func (l *Lifecycle) Update() { l.tick(core.LoopUpdate) }

// LateUpdate fires the five LateUpdate phases in order.
func (l *Lifecycle) LateUpdate() { l.tick(core.LoopLateUpdate) }

// FixedUpdate fires the five FixedUpdate phases in order.
func (l *Lifecycle) FixedUpdate() { l.tick(core.LoopFixedUpdate) }

func (l *Lifecycle) tick(loop core.Loop) {
	if l.destroyed {
		return
	}
	for p := core.PhaseStart; p < core.PhaseCount; p++ {
		l.slots[loop][p].Invoke()
	}
}

// Destroy performs the terminal transition: all fifteen phase lists are
// cleared, the owned signal fires exactly once (running subscribers in LIFO
// order), then the OnDestroy hooks run. Destroying an already-destroyed
// lifecycle is a no-op.
func (l *Lifecycle) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true

	for loop := range l.slots {
		for phase := range l.slots[loop] {
			l.slots[loop][phase].Clear()
		}
	}

	if l.sig != nil {
		l.sig.Fire()
	}

	hooks := l.onDestroy
	l.onDestroy = nil
	for _, fn := range hooks {
		fn()
	}

	l.logger.Debug("lifecycle destroyed", "lifecycle", l.name, "id", l.id)
}
