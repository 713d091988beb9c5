// Package object models the engine-managed side of FrameMesh: scenes,
// objects with name/tag/layer identity and a parent-child hierarchy, and the
// Host that drives frames and defers object destruction to the end of the
// frame.
//
// The Host is the reference in-memory implementation of the environment the
// scheduler assumes: it loads and unloads scenes, ticks every auto-tick
// lifecycle once per frame stage, and drains the deferred-destroy queue in
// EndFrame. Because deletion is deferred, objects being torn down go through
// a deep-destroy step (relabel, detach, neutralize, deactivate) so that
// name- or hierarchy-based lookups issued later in the same frame cannot
// observe a zombie pending deletion.
package object
