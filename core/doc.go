// Package core provides the foundational types shared by the FrameMesh
// scheduler. It defines the core abstractions for:
//
//   - Actions (registered per-frame callback slots)
//   - Loops and Phases (the 3×5 grid of update stages a host drives)
//   - SlotList (the dense, unordered callback registry backing each phase)
//   - Disposable (objects whose lifetime can be tied to a cancellation signal)
//   - The caller-misuse error taxonomy raised at binding time
//
// The package intentionally keeps implementation concerns (lifecycle
// aggregation, ownership bindings, host integration) out of scope, exposing
// small types so higher packages can compose them without import cycles.
package core
