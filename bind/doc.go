// Package bind ties arbitrary lifetimes to owners. An owner is a raw
// cancellation signal, a lifecycle, or a scene scope; a target is a plain
// disposable, an engine-managed object, a component, or another (non
// scene-scoped) lifecycle. Each target kind has its own entry point, so the
// ownership variant is selected statically at the call site instead of by
// runtime type inspection.
//
// Binding rules, validated synchronously at bind time:
//
//   - a scene's transform root can never be bound (core.ErrTransformRoot)
//   - a scene-scoped lifecycle may own but never be owned (core.ErrSceneOwned)
//   - target and owner must share a residency scene unless the owner is
//     durable (core.ErrCrossScene); binding through a raw signal bypasses
//     the residency check entirely
//   - binding a component instead of its object is allowed but logged as
//     discouraged, since its destruction timing across a scene unload is
//     not guaranteed to be stable
//
// A successful object binding promotes the object to the durable scene so
// its destruction order is fixed by binding order (LIFO on the owning
// signal) and never races a scene unload. Engine objects are torn down with
// the deep-destroy procedure (see object.Object.DeepDestroy) because the
// host defers deletion to the end of the frame.
package bind
