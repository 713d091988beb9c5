package bind

import (
	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/lifecycle"
	"github.com/hupe1980/framemesh/logging"
	"github.com/hupe1980/framemesh/object"
	"github.com/hupe1980/framemesh/signal"
)

// Binder creates ownership bindings and dispatches the diagnostic observer
// hook. A single Binder is normally shared process-wide; see the facade.
type Binder struct {
	logger logging.Logger
	table  *Table
}

// NewBinder creates a Binder. A nil logger defaults to NoOp.
func NewBinder(logger logging.Logger) *Binder {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Binder{logger: logger, table: newTable()}
}

// Observe registers a diagnostic callback invoked synchronously just before
// each successful binding completes. Purely observational.
func (b *Binder) Observe(fn Observer) { b.table.observe(fn) }

// Stats returns the number of bindings created so far, per target kind.
func (b *Binder) Stats() map[Kind]int { return b.table.stats() }

// DisposeWith arranges for d.Dispose to run exactly once when the owner's
// lifetime ends. Firing an already-fired binding is a no-op; the returned
// ticket cancels the binding without disposing. Plain disposables carry no
// residency, so no scene rules apply. A nil target or invalid owner returns
// nil.
func (b *Binder) DisposeWith(d core.Disposable, owner Owner) *signal.Ticket {
	if d == nil || !owner.valid() {
		return nil
	}

	sig := owner.Signal()
	ticket := sig.Subscribe(d.Dispose)
	b.table.record(Event{Kind: KindDisposable, Target: d, Signal: sig, Ticket: ticket, Owner: owner})

	return ticket
}

// DestroyWith arranges for o to be deep-destroyed when the owner's lifetime
// ends, after validating the binding rules. On success the object is
// promoted to the durable scene, fixing its destruction order to binding
// order. A nil object or invalid owner is a no-op.
func (b *Binder) DestroyWith(o *object.Object, owner Owner) (*signal.Ticket, error) {
	if o == nil || !owner.valid() {
		return nil, nil
	}

	if o.IsRoot() {
		b.logger.Error("binding rejected", "target", o.Name(), "reason", "transform root")
		return nil, core.ErrTransformRoot
	}
	if o.Destroyed() || o.Doomed() {
		return nil, core.ErrObjectDestroyed
	}
	if err := b.checkResidency(o.Scene(), owner); err != nil {
		b.logger.Error("binding rejected", "target", o.Name(), "reason", err.Error())
		return nil, err
	}

	o.Host().MakeDurable(o)

	sig := owner.Signal()
	ticket := sig.Subscribe(o.DeepDestroy)
	b.table.record(Event{Kind: KindObject, Target: o, Signal: sig, Ticket: ticket, Owner: owner})

	return ticket, nil
}

// DestroyComponentWith arranges for component c to be removed from its
// object when the owner's lifetime ends. Binding a component rather than
// its root object is discouraged (its destruction timing relative to a
// scene unload is not stable) and logged at warning level, but allowed.
func (b *Binder) DestroyComponentWith(c *object.Component, owner Owner) (*signal.Ticket, error) {
	if c == nil || !owner.valid() {
		return nil, nil
	}

	if c.Removed() || c.Object().Destroyed() {
		return nil, core.ErrObjectDestroyed
	}
	if err := b.checkResidency(c.Object().Scene(), owner); err != nil {
		b.logger.Error("binding rejected", "target", c.Name(), "reason", err.Error())
		return nil, err
	}

	b.logger.Warn("binding a component instead of its object; destruction timing across scene unload is not stable",
		"component", c.Name(), "object", c.Object().Name())

	sig := owner.Signal()
	ticket := sig.Subscribe(c.Remove)
	b.table.record(Event{Kind: KindComponent, Target: c, Signal: sig, Ticket: ticket, Owner: owner})

	return ticket, nil
}

// DestroyLifecycleWith arranges for child to be destroyed when the owner's
// lifetime ends. Scene-scoped lifecycles may only own, never be owned.
func (b *Binder) DestroyLifecycleWith(child *lifecycle.Lifecycle, owner Owner) (*signal.Ticket, error) {
	if child == nil || !owner.valid() {
		return nil, nil
	}

	if child.SceneScoped() {
		b.logger.Error("binding rejected", "target", child.Name(), "reason", "scene-scoped lifecycle as dependent")
		return nil, core.ErrSceneOwned
	}
	if child.Destroyed() {
		return nil, core.ErrLifecycleDestroyed
	}
	if handle, _ := child.Residency(); handle != 0 {
		if err := b.checkResidencyHandle(handle, owner); err != nil {
			b.logger.Error("binding rejected", "target", child.Name(), "reason", err.Error())
			return nil, err
		}
	}

	sig := owner.Signal()
	ticket := sig.Subscribe(child.Destroy)
	b.table.record(Event{Kind: KindLifecycle, Target: child, Signal: sig, Ticket: ticket, Owner: owner})

	return ticket, nil
}

// checkResidency enforces the inter-scene binding restriction: a target may
// only be bound to an owner resident in another scene when the owner is
// durable. Raw-signal owners skip the check.
func (b *Binder) checkResidency(targetScene *object.Scene, owner Owner) error {
	return b.checkResidencyHandle(targetScene.Handle(), owner)
}

func (b *Binder) checkResidencyHandle(target int, owner Owner) error {
	handle, durable, checked := owner.residency()
	if !checked || durable {
		return nil
	}
	if handle != target {
		return core.ErrCrossScene
	}
	return nil
}
