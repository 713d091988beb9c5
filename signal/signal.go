package signal

// Signal is a one-shot cancellation source. The zero value is an unfired
// signal ready for use; New is the conventional constructor.
type Signal struct {
	fired bool
	subs  []*Ticket
}

// New returns an unfired Signal with no subscribers.
func New() *Signal {
	return &Signal{}
}

// Fired reports whether the signal has already fired.
func (s *Signal) Fired() bool { return s.fired }

// Subscribe registers fn to run when the signal fires and returns the Ticket
// representing the subscription. If the signal has already fired, fn runs
// synchronously before Subscribe returns and the returned ticket is spent.
// A nil fn returns nil.
func (s *Signal) Subscribe(fn func()) *Ticket {
	if fn == nil {
		return nil
	}

	t := &Ticket{fn: fn}

	if s.fired {
		t.fire()
		return t
	}

	s.subs = append(s.subs, t)

	return t
}

// Fire fires the signal, running subscribers in reverse subscription order.
// Firing an already-fired signal is a no-op.
func (s *Signal) Fire() {
	if s.fired {
		return
	}
	s.fired = true

	subs := s.subs
	s.subs = nil

	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].fire()
	}
}

// Len returns the number of pending subscriptions. Cancelled tickets still
// occupy their entry until the signal fires.
func (s *Signal) Len() int { return len(s.subs) }

// Ticket records one subscription on a Signal. It is the unit of
// exactly-once delivery: firing or cancelling a spent ticket is a no-op.
type Ticket struct {
	fn    func()
	spent bool
}

func (t *Ticket) fire() {
	if t.spent {
		return
	}
	t.spent = true

	fn := t.fn
	t.fn = nil
	fn()
}

// Cancel detaches the subscription without running its callback. Cancelling
// a nil, fired, or already-cancelled ticket is a no-op.
func (t *Ticket) Cancel() {
	if t == nil || t.spent {
		return
	}
	t.spent = true
	t.fn = nil
}

// Spent reports whether the ticket has fired or been cancelled.
func (t *Ticket) Spent() bool { return t != nil && t.spent }
