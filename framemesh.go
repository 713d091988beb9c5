// Package framemesh provides a high-level façade over the lifecycle
// scheduler and its host environment (scenes, engine objects, ownership
// bindings & logging). Most applications interact with this package by:
//  1. Creating a FrameMesh via New() (optionally overriding the logger)
//  2. Creating lifecycles and registering staged update callbacks
//  3. Binding owned lifetimes to signals, lifecycles or scene scopes
//  4. Calling Tick() once per frame (or driving phases themselves)
//
// The façade delegates scheduling to lifecycle.Lifecycle and object.Host
// while keeping setup and usage ergonomics concise. All defaults are safe
// for local development and testing.
package framemesh

import (
	"github.com/hupe1980/framemesh/bind"
	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/lifecycle"
	"github.com/hupe1980/framemesh/logging"
	"github.com/hupe1980/framemesh/object"
	"github.com/hupe1980/framemesh/scene"
	"github.com/hupe1980/framemesh/signal"
)

// Options configures the FrameMesh instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// FrameMesh is the high-level façade aggregating the host, the scene
// registry and the binder.
type FrameMesh struct {
	opts   Options
	host   *object.Host
	scenes *scene.Registry
	binder *bind.Binder
}

// New creates a new FrameMesh instance with optional overrides.
func New(optFns ...func(o *Options)) *FrameMesh {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	host := object.NewHost(opts.Logger)

	return &FrameMesh{
		opts:   opts,
		host:   host,
		scenes: scene.NewRegistry(host, opts.Logger),
		binder: bind.NewBinder(opts.Logger),
	}
}

// Host returns the underlying object world and frame driver.
func (m *FrameMesh) Host() *object.Host { return m.host }

// Scenes returns the scene→lifecycle registry.
func (m *FrameMesh) Scenes() *scene.Registry { return m.scenes }

// Binder returns the ownership binder.
func (m *FrameMesh) Binder() *bind.Binder { return m.binder }

// Create allocates a new lifecycle in a fresh container object. When retain
// is set, the container survives scene transitions.
func (m *FrameMesh) Create(name string, retain bool) *lifecycle.Lifecycle {
	return m.host.CreateLifecycle(name, retain)
}

// SceneLifecycle returns the lifecycle that dies when s unloads, creating
// it on first request. The second result is false for an invalid or
// unloaded scene.
func (m *FrameMesh) SceneLifecycle(s *object.Scene) (*lifecycle.Lifecycle, bool) {
	return m.scenes.Get(s)
}

// DisposeWith binds d's disposal to the owner's lifetime.
func (m *FrameMesh) DisposeWith(d core.Disposable, owner bind.Owner) *signal.Ticket {
	return m.binder.DisposeWith(d, owner)
}

// DestroyWith binds o's deep destruction to the owner's lifetime.
func (m *FrameMesh) DestroyWith(o *object.Object, owner bind.Owner) (*signal.Ticket, error) {
	return m.binder.DestroyWith(o, owner)
}

// SignalOwner wraps a raw one-shot signal as a binding owner.
func SignalOwner(s *signal.Signal) bind.Owner { return bind.SignalOwner(s) }

// LifecycleOwner wraps a lifecycle as a binding owner.
func LifecycleOwner(l *lifecycle.Lifecycle) bind.Owner { return bind.LifecycleOwner(l) }

// SceneOwner resolves a scene's lifecycle through the registry and wraps it
// as a binding owner. The second result is false for an invalid or unloaded
// scene.
func SceneOwner(r *scene.Registry, s *object.Scene) (bind.Owner, bool) {
	return bind.SceneOwner(r, s)
}

// Tick runs one full frame on the host.
func (m *FrameMesh) Tick() { m.host.Tick() }
