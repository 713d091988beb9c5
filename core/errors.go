package core

import "errors"

// Caller-misuse errors raised synchronously at binding or registration time.
// They indicate a bug at the call site and are never retried.
var (
	// ErrTransformRoot is returned when a binding targets a scene's
	// transform root. Roots belong to the scene itself and cannot be given
	// away to another owner.
	ErrTransformRoot = errors.New("framemesh: transform root cannot be bound to an owner")

	// ErrSceneOwned is returned when a scene-scoped lifecycle is offered as
	// a binding dependent. Scene scopes may own other lifetimes but are
	// destroyed exclusively by their scene's unload.
	ErrSceneOwned = errors.New("framemesh: scene-scoped lifecycle cannot be owned")

	// ErrCrossScene is returned when a target's originating scene differs
	// from its owner's residency scene and the owner is not durable. Bind
	// through a raw signal to opt out of residency checking.
	ErrCrossScene = errors.New("framemesh: target and owner reside in different scenes")

	// ErrLifecycleDestroyed reports an operation on a lifecycle that has
	// already completed its Destroyed transition.
	ErrLifecycleDestroyed = errors.New("framemesh: lifecycle already destroyed")

	// ErrObjectDestroyed reports a binding against an engine object that is
	// already destroyed or pending end-of-frame destruction.
	ErrObjectDestroyed = errors.New("framemesh: object already destroyed")
)
