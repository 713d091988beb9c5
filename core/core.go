package core

// Action is a single scheduled callback. Registration stores the value and
// hands back the *Action under which it was stored; that pointer is the
// slot's identity for later removal, since Go function values themselves are
// not comparable.
type Action func()

// Loop identifies one of the three tick entry points driven by the host
// frame driver. Each loop owns its own set of five phases.
type Loop int

const (
	// LoopFixedUpdate is the fixed-timestep loop, ticked zero or more times
	// per rendered frame by the host.
	LoopFixedUpdate Loop = iota

	// LoopUpdate is the main per-frame loop.
	LoopUpdate

	// LoopLateUpdate runs after all LoopUpdate work for the frame.
	LoopLateUpdate

	// LoopCount is the total number of loops.
	LoopCount
)

// String returns the string representation of the loop.
func (l Loop) String() string {
	switch l {
	case LoopFixedUpdate:
		return "FixedUpdate"
	case LoopUpdate:
		return "Update"
	case LoopLateUpdate:
		return "LateUpdate"
	default:
		return "Unknown"
	}
}

// Phase is one of the five ordered sub-stages within a single tick call.
// Phases fire strictly in declaration order: Start → Early → Usual → Later
// → Final.
type Phase int

const (
	// PhaseStart runs first. Use for input sampling and per-frame setup that
	// later phases depend on.
	PhaseStart Phase = iota

	// PhaseEarly runs second, before the bulk of frame logic.
	PhaseEarly

	// PhaseUsual is the default phase for ordinary frame logic.
	PhaseUsual

	// PhaseLater runs after the main logic, for work that must observe its
	// results.
	PhaseLater

	// PhaseFinal runs last. Use for cleanup and end-of-stage bookkeeping.
	PhaseFinal

	// PhaseCount is the total number of phases per loop.
	PhaseCount
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseEarly:
		return "Early"
	case PhaseUsual:
		return "Usual"
	case PhaseLater:
		return "Later"
	case PhaseFinal:
		return "Final"
	default:
		return "Unknown"
	}
}

// Disposable is implemented by objects that release their resources exactly
// once. Bindings created via the bind package call Dispose when the owning
// signal fires.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to the Disposable interface.
type DisposeFunc func()

// Dispose invokes the wrapped function.
func (f DisposeFunc) Dispose() { f() }
