package bind

import (
	"sync"

	"github.com/hupe1980/framemesh/signal"
)

// Kind identifies the target variant of a binding.
type Kind string

const (
	// KindDisposable is a plain disposable bound via DisposeWith.
	KindDisposable Kind = "disposable"
	// KindObject is an engine-managed object bound via DestroyWith.
	KindObject Kind = "object"
	// KindComponent is a component bound via DestroyComponentWith.
	KindComponent Kind = "component"
	// KindLifecycle is a nested lifecycle bound via DestroyLifecycleWith.
	KindLifecycle Kind = "lifecycle"
)

// Event describes one completed binding: the bound target, the signal it is
// subscribed on, the resulting ticket and the owner.
type Event struct {
	Kind   Kind
	Target any
	Signal *signal.Signal
	Ticket *signal.Ticket
	Owner  Owner
}

// Observer receives binding events synchronously, just before the binding
// call returns. Observers must not affect control flow.
type Observer func(Event)

// Table is the process-wide binding diagnostic state: registered observers
// plus a per-kind count of bindings created. Guarded by a mutex so a
// concurrent host reimplementation stays safe.
type Table struct {
	mu        sync.Mutex
	observers []Observer
	counts    map[Kind]int
}

func newTable() *Table {
	return &Table{counts: map[Kind]int{}}
}

func (t *Table) observe(fn Observer) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

func (t *Table) record(ev Event) {
	t.mu.Lock()
	t.counts[ev.Kind]++
	observers := make([]Observer, len(t.observers))
	copy(observers, t.observers)
	t.mu.Unlock()

	for _, fn := range observers {
		fn(ev)
	}
}

func (t *Table) stats() map[Kind]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[Kind]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
