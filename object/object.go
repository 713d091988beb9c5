package object

import (
	"github.com/google/uuid"
	"github.com/hupe1980/framemesh/lifecycle"
)

// Object is an engine-managed entity: it has engine-owned identity (name,
// tag, layer, activity) and a place in a scene's parent-child hierarchy.
// Destruction is deferred to the end of the frame; see DeepDestroy.
type Object struct {
	id     string
	name   string
	tag    string
	layer  int
	active bool

	isRoot    bool
	doomed    bool
	destroyed bool

	parent   *Object
	children []*Object
	scene    *Scene
	host     *Host

	lc         *lifecycle.Lifecycle
	components []*Component
}

// ID returns the object's process-unique identifier.
func (o *Object) ID() string { return o.id }

// Name returns the object's current name.
func (o *Object) Name() string { return o.name }

// SetName renames the object.
func (o *Object) SetName(name string) { o.name = name }

// Tag returns the object's classification tag.
func (o *Object) Tag() string { return o.tag }

// SetTag sets the classification tag.
func (o *Object) SetTag(tag string) { o.tag = tag }

// Layer returns the object's visibility layer.
func (o *Object) Layer() int { return o.layer }

// SetLayer sets the visibility layer.
func (o *Object) SetLayer(layer int) { o.layer = layer }

// Active reports whether the object participates in lookups.
func (o *Object) Active() bool { return o.active }

// SetActive toggles lookup participation.
func (o *Object) SetActive(v bool) { o.active = v }

// IsRoot reports whether this object is a scene's transform root.
func (o *Object) IsRoot() bool { return o.isRoot }

// Destroyed reports whether the object has been finalized.
func (o *Object) Destroyed() bool { return o.destroyed }

// Doomed reports whether the object is queued for end-of-frame destruction.
func (o *Object) Doomed() bool { return o.doomed }

// Scene returns the scene the object currently resides in.
func (o *Object) Scene() *Scene { return o.scene }

// Host returns the owning host.
func (o *Object) Host() *Host { return o.host }

// Parent returns the object's parent; a top-level object's parent is its
// scene root.
func (o *Object) Parent() *Object { return o.parent }

// Children returns a snapshot of the object's direct children.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// SetParent reparents the object. A nil parent attaches the object under its
// scene's root. Reparenting across scenes moves the whole subtree into the
// new parent's scene.
func (o *Object) SetParent(p *Object) {
	if o.isRoot || o.destroyed {
		return
	}
	if p == nil {
		p = o.scene.root
	}

	o.detach()
	o.parent = p
	p.children = append(p.children, o)

	if p.scene != o.scene {
		o.rehome(p.scene)
	}
}

// detach removes the object from its parent's child list without attaching
// it anywhere else. A detached object is invisible to hierarchy traversal.
func (o *Object) detach() {
	p := o.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == o {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	o.parent = nil
}

// rehome moves the object's subtree into scene s.
func (o *Object) rehome(s *Scene) {
	o.scene = s
	if o.lc != nil {
		o.lc.SetResidency(s.Handle(), s == o.host.durable)
	}
	for _, c := range o.children {
		c.rehome(s)
	}
}

// Lifecycle returns the lifecycle attached to this object, nil if none.
func (o *Object) Lifecycle() *lifecycle.Lifecycle { return o.lc }

// AddComponent attaches a named component to the object and returns it.
func (o *Object) AddComponent(name string) *Component {
	c := &Component{id: uuid.NewString(), name: name, owner: o}
	o.components = append(o.components, c)
	return c
}

// Components returns a snapshot of the attached components.
func (o *Object) Components() []*Component {
	out := make([]*Component, len(o.components))
	copy(out, o.components)
	return out
}

// DeepDestroy hides the object and queues it for end-of-frame destruction.
// Because deletion is deferred, the object is first relabeled with a unique
// marker name, detached from the hierarchy, reset to a neutral tag and
// layer, and deactivated, so lookups issued later in the same frame cannot
// observe it. Calling DeepDestroy on a doomed or destroyed object is a
// no-op; scene roots are never destroyed this way.
func (o *Object) DeepDestroy() {
	if o.isRoot || o.doomed || o.destroyed {
		return
	}

	o.name = "doomed-" + uuid.NewString()
	o.detach()
	o.tag = ""
	o.layer = 0
	o.active = false

	o.doomed = true
	o.host.deferDestroy(o)
}

// Component is a named sub-object attached to an Object. Binding a component
// (rather than its root object) to an owner is allowed but discouraged: its
// destruction timing relative to scene unload is not guaranteed to be
// stable.
type Component struct {
	id      string
	name    string
	owner   *Object
	removed bool
}

// ID returns the component's process-unique identifier.
func (c *Component) ID() string { return c.id }

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// Object returns the owning object.
func (c *Component) Object() *Object { return c.owner }

// Removed reports whether the component has been detached from its object.
func (c *Component) Removed() bool { return c.removed }

// Remove detaches the component from its object. Idempotent.
func (c *Component) Remove() {
	if c.removed {
		return
	}
	c.removed = true

	o := c.owner
	for i, oc := range o.components {
		if oc == c {
			o.components = append(o.components[:i], o.components[i+1:]...)
			break
		}
	}
}
