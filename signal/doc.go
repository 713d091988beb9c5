// Package signal implements the one-shot cancellation primitive that drives
// all lifetime teardown in FrameMesh. A Signal fires at most once; firing
// runs its subscribers in reverse subscription order (last subscribed, first
// fired), which gives ownership graphs deterministic LIFO destruction.
//
// Subscribing to a signal that has already fired runs the callback
// synchronously before Subscribe returns, so there is no "missed"
// cancellation. Every delivery is exactly-once: a Ticket that has fired or
// been cancelled is inert.
//
// Signals follow the single-threaded cooperative model of the rest of the
// module and perform no locking.
package signal
