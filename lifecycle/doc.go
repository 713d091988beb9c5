// Package lifecycle implements the per-owner scheduling aggregate of
// FrameMesh. A Lifecycle holds fifteen callback slot lists, one for every
// combination of loop (FixedUpdate, Update, LateUpdate) and phase (Start,
// Early, Usual, Later, Final), plus the cancellation signal that everything
// bound to the lifecycle dies with.
//
// A host frame driver calls Update, LateUpdate and FixedUpdate once per
// corresponding frame stage; each call fires its five phases strictly in
// order. Consumers register callbacks through the named per-phase methods
// (RegisterUpdate, RegisterEarlyFixedUpdate, ...) or the generic Register,
// optionally tying the registration to a cancellation signal so the callback
// unregisters itself when the signal fires.
//
// A Lifecycle is Active from creation until Destroy, which clears every
// phase list and fires the owned signal exactly once. Registering on a
// destroyed lifecycle panics with core.ErrLifecycleDestroyed; it is a caller
// bug, not a recoverable condition.
package lifecycle
