package core

const (
	// initialCapacity is the backing-array size allocated on first Add.
	initialCapacity = 1

	// doubleLimit is the capacity up to which the backing array doubles on
	// growth. Beyond it, growth is linear by linearStep. The resulting
	// capacity schedule is 1, 2, 4, 8, 16, 24, 32, 40, ...
	doubleLimit = 16

	// linearStep is the linear growth increment once doubleLimit is reached.
	linearStep = 8
)

// SlotList is a growable, unordered registry of Action slots. Removal swaps
// the last live slot into the vacated index, which makes the structural
// update O(1) at the cost of not preserving registration order; callers must
// not depend on relative firing order within one list.
//
// SlotList is not safe for concurrent use and, by contract, must only be
// mutated between Invoke passes. Adding or removing slots from within a
// callback running in the same Invoke pass leads to unspecified skip or
// double-fire behavior for that pass; this is a documented limitation, not a
// special case.
//
// The zero value is an empty list ready for use.
type SlotList struct {
	slots []*Action
	count int
}

// Add appends a to the list, growing the backing array per the capacity
// schedule, and returns the same pointer for later identity-based removal.
// A nil action is a no-op returning nil.
func (l *SlotList) Add(a *Action) *Action {
	if a == nil {
		return nil
	}

	if l.slots == nil {
		l.slots = make([]*Action, initialCapacity)
	} else if l.count == len(l.slots) {
		l.grow()
	}

	l.slots[l.count] = a
	l.count++

	return a
}

func (l *SlotList) grow() {
	c := len(l.slots)

	var n int
	if c < doubleLimit {
		n = c * 2
	} else {
		n = c + linearStep
	}

	grown := make([]*Action, n)
	copy(grown, l.slots)
	l.slots = grown
}

// Remove deletes the slot holding a, matched by pointer identity. The last
// live slot is swapped into the vacated index. A nil action, an unallocated
// list, or an absent action is a no-op.
func (l *SlotList) Remove(a *Action) {
	if a == nil || l.slots == nil {
		return
	}

	for i := 0; i < l.count; i++ {
		if l.slots[i] != a {
			continue
		}

		last := l.count - 1
		if i != last {
			l.slots[i] = l.slots[last]
		}
		l.slots[last] = nil
		l.count = last

		return
	}
}

// Invoke calls every live slot in current array order. A panicking callback
// propagates and aborts the remainder of the pass.
func (l *SlotList) Invoke() {
	for i := 0; i < l.count; i++ {
		(*l.slots[i])()
	}
}

// GetActions returns a snapshot copy of the live slots. It returns nil for
// an unallocated list.
func (l *SlotList) GetActions() []*Action {
	if l.slots == nil {
		return nil
	}

	out := make([]*Action, l.count)
	copy(out, l.slots[:l.count])

	return out
}

// Len returns the number of live slots.
func (l *SlotList) Len() int { return l.count }

// Cap returns the current backing-array capacity, 0 if unallocated.
func (l *SlotList) Cap() int { return len(l.slots) }

// Clear resets the list to empty and drops the backing array; the next Add
// reallocates at the initial capacity.
func (l *SlotList) Clear() {
	l.slots = nil
	l.count = 0
}
