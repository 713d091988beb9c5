package bind

import (
	"github.com/hupe1980/framemesh/lifecycle"
	"github.com/hupe1980/framemesh/object"
	"github.com/hupe1980/framemesh/scene"
	"github.com/hupe1980/framemesh/signal"
)

// Owner designates the lifetime a binding's target dies with. Construct one
// with SignalOwner, LifecycleOwner or SceneOwner; the zero value is invalid.
type Owner struct {
	sig *signal.Signal
	lc  *lifecycle.Lifecycle
}

// SignalOwner wraps a raw cancellation signal as an owner. Raw-signal
// ownership is the escape hatch from residency checking: a binding through
// it may cross scene boundaries.
func SignalOwner(s *signal.Signal) Owner {
	return Owner{sig: s}
}

// LifecycleOwner wraps a lifecycle as an owner; bound targets die when the
// lifecycle is destroyed.
func LifecycleOwner(l *lifecycle.Lifecycle) Owner {
	return Owner{lc: l}
}

// SceneOwner resolves the scene-scoped lifecycle for s through the registry
// and wraps it as an owner. The second result is false when s is invalid or
// not loaded.
func SceneOwner(r *scene.Registry, s *object.Scene) (Owner, bool) {
	lc, ok := r.Get(s)
	if !ok {
		return Owner{}, false
	}
	return LifecycleOwner(lc), true
}

// Signal returns the owner's cancellation signal: the raw signal itself, or
// the owned lifecycle's signal. Nil for an invalid owner.
func (o Owner) Signal() *signal.Signal {
	switch {
	case o.sig != nil:
		return o.sig
	case o.lc != nil:
		return o.lc.Signal()
	default:
		return nil
	}
}

// Lifecycle returns the owning lifecycle, nil for raw-signal owners.
func (o Owner) Lifecycle() *lifecycle.Lifecycle { return o.lc }

// valid reports whether the owner designates any lifetime at all.
func (o Owner) valid() bool { return o.sig != nil || o.lc != nil }

// residency returns the owner's residency scene handle and durability.
// checked is false for raw-signal owners and for lifecycles that are not
// attached to any container.
func (o Owner) residency() (handle int, durable bool, checked bool) {
	if o.lc == nil {
		return 0, false, false
	}
	handle, durable = o.lc.Residency()
	if handle == 0 {
		return 0, durable, false
	}
	return handle, durable, true
}
