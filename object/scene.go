package object

// Scene is a loadable content partition. Objects belong to exactly one scene
// at a time; unloading a scene destroys every object still resident in it.
// The durable scene (see Host.DurableScene) is never unloaded.
type Scene struct {
	handle int
	name   string
	loaded bool
	host   *Host
	root   *Object
}

// Handle returns the scene's process-unique handle. Handles are never
// reused.
func (s *Scene) Handle() int {
	if s == nil {
		return 0
	}
	return s.handle
}

// Name returns the scene name.
func (s *Scene) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Valid reports whether the scene refers to a real partition of a host.
func (s *Scene) Valid() bool { return s != nil && s.host != nil && s.handle != 0 }

// Loaded reports whether the scene is currently loaded.
func (s *Scene) Loaded() bool { return s.Valid() && s.loaded }

// Root returns the scene's transform root. The root exists for the whole
// life of the scene and cannot be bound to any owner.
func (s *Scene) Root() *Object {
	if s == nil {
		return nil
	}
	return s.root
}

// Objects returns a snapshot of the scene's top-level objects (the root's
// direct children).
func (s *Scene) Objects() []*Object {
	if s == nil || s.root == nil {
		return nil
	}
	return s.root.Children()
}
