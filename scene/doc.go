// Package scene provides the process-wide lookup from a loaded scene to the
// lifecycle that dies when that scene unloads. Registry.Get is idempotent:
// the first call for a loaded scene creates its scene-scoped lifecycle, and
// every later call returns the same instance until the scene unloads.
//
// Requesting the lifecycle for an invalid or unloaded scene is a common,
// recoverable caller mistake and is signaled by an absent result rather than
// an error. A registry entry pointing at an already-destroyed lifecycle, on
// the other hand, is an internal-consistency violation and panics.
package scene
