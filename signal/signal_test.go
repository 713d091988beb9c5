package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_FireRunsSubscribersLIFO(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func() { order = append(order, "a") })
	s.Subscribe(func() { order = append(order, "b") })
	s.Subscribe(func() { order = append(order, "c") })

	s.Fire()

	assert.Equal(t, []string{"c", "b", "a"}, order)
	assert.True(t, s.Fired())
}

func TestSignal_ZeroValueIsUsable(t *testing.T) {
	var s Signal

	calls := 0
	ticket := s.Subscribe(func() { calls++ })
	require.NotNil(t, ticket)

	s.Fire()

	assert.Equal(t, 1, calls)
	assert.True(t, s.Fired())
}

func TestSignal_SecondFireIsNoOp(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(func() { calls++ })

	s.Fire()
	s.Fire()

	assert.Equal(t, 1, calls)
}

func TestSignal_SubscribeAfterFireRunsSynchronously(t *testing.T) {
	s := New()
	s.Fire()

	calls := 0
	ticket := s.Subscribe(func() { calls++ })

	assert.Equal(t, 1, calls, "callback should run before Subscribe returns")
	assert.True(t, ticket.Spent())
	assert.Equal(t, 0, s.Len())
}

func TestSignal_CancelledTicketDoesNotFire(t *testing.T) {
	s := New()

	calls := 0
	ticket := s.Subscribe(func() { calls++ })

	ticket.Cancel()
	ticket.Cancel() // idempotent
	s.Fire()

	assert.Equal(t, 0, calls)
}

func TestSignal_SubscribeNil(t *testing.T) {
	s := New()

	assert.Nil(t, s.Subscribe(nil))
	assert.Equal(t, 0, s.Len())
}

func TestTicket_NilCancelIsSafe(t *testing.T) {
	var ticket *Ticket

	assert.NotPanics(t, func() { ticket.Cancel() })
	assert.False(t, ticket.Spent())
}
