package testutil

import (
	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/object"
)

// NewHost returns a silent Host for tests.
func NewHost() *object.Host {
	return object.NewHost(nil)
}

// Counter counts invocations of the Action it hands out. Example:
//
//	c := testutil.NewCounter()
//	handle := lc.RegisterUpdate(c.Action(), nil)
//	lc.Update()
//	// c.Calls() == 1
type Counter struct {
	calls int
}

// NewCounter creates a zeroed Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Action returns a callback that increments the counter.
func (c *Counter) Action() core.Action {
	return func() { c.calls++ }
}

// Calls returns how many times the action has run.
func (c *Counter) Calls() int { return c.calls }

// Recorder appends labels to a shared log slice so tests can assert
// relative ordering across callbacks.
type Recorder struct {
	log []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Action returns a callback that records label when run.
func (r *Recorder) Action(label string) core.Action {
	return func() { r.log = append(r.log, label) }
}

// Record appends label directly.
func (r *Recorder) Record(label string) { r.log = append(r.log, label) }

// Log returns the labels recorded so far, in order.
func (r *Recorder) Log() []string { return r.log }

// Disposal is a core.Disposable that counts Dispose calls.
type Disposal struct {
	disposed int
}

// NewDisposal creates a zeroed Disposal.
func NewDisposal() *Disposal {
	return &Disposal{}
}

// Dispose increments the disposal count.
func (d *Disposal) Dispose() { d.disposed++ }

// Disposed returns how many times Dispose has run.
func (d *Disposal) Disposed() int { return d.disposed }
