package lifecycle

import (
	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/signal"
)

// Named per-phase registration surface. Every phase of every loop gets a
// Register/Remove/Get triple; the Usual phase uses the bare loop name. The
// cancel signal may be nil. All methods delegate to the generic
// Register/Remove/Actions.

// RegisterStartFixedUpdate registers fn for the Start phase of FixedUpdate.
func (l *Lifecycle) RegisterStartFixedUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopFixedUpdate, core.PhaseStart, fn, cancel)
}

// RegisterEarlyFixedUpdate registers fn for the Early phase of FixedUpdate.
func (l *Lifecycle) RegisterEarlyFixedUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopFixedUpdate, core.PhaseEarly, fn, cancel)
}

// RegisterFixedUpdate registers fn for the Usual phase of FixedUpdate.
func (l *Lifecycle) RegisterFixedUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopFixedUpdate, core.PhaseUsual, fn, cancel)
}

// RegisterLaterFixedUpdate registers fn for the Later phase of FixedUpdate.
func (l *Lifecycle) RegisterLaterFixedUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopFixedUpdate, core.PhaseLater, fn, cancel)
}

// RegisterFinalFixedUpdate registers fn for the Final phase of FixedUpdate.
func (l *Lifecycle) RegisterFinalFixedUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopFixedUpdate, core.PhaseFinal, fn, cancel)
}

// RegisterStartUpdate registers fn for the Start phase of Update.
func (l *Lifecycle) RegisterStartUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopUpdate, core.PhaseStart, fn, cancel)
}

// RegisterEarlyUpdate registers fn for the Early phase of Update.
func (l *Lifecycle) RegisterEarlyUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopUpdate, core.PhaseEarly, fn, cancel)
}

// RegisterUpdate registers fn for the Usual phase of Update.
func (l *Lifecycle) RegisterUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopUpdate, core.PhaseUsual, fn, cancel)
}

// RegisterLaterUpdate registers fn for the Later phase of Update.
func (l *Lifecycle) RegisterLaterUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopUpdate, core.PhaseLater, fn, cancel)
}

// RegisterFinalUpdate registers fn for the Final phase of Update.
func (l *Lifecycle) RegisterFinalUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopUpdate, core.PhaseFinal, fn, cancel)
}

// RegisterStartLateUpdate registers fn for the Start phase of LateUpdate.
func (l *Lifecycle) RegisterStartLateUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopLateUpdate, core.PhaseStart, fn, cancel)
}

// RegisterEarlyLateUpdate registers fn for the Early phase of LateUpdate.
func (l *Lifecycle) RegisterEarlyLateUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopLateUpdate, core.PhaseEarly, fn, cancel)
}

// RegisterLateUpdate registers fn for the Usual phase of LateUpdate.
func (l *Lifecycle) RegisterLateUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopLateUpdate, core.PhaseUsual, fn, cancel)
}

// RegisterLaterLateUpdate registers fn for the Later phase of LateUpdate.
func (l *Lifecycle) RegisterLaterLateUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopLateUpdate, core.PhaseLater, fn, cancel)
}

// RegisterFinalLateUpdate registers fn for the Final phase of LateUpdate.
func (l *Lifecycle) RegisterFinalLateUpdate(fn core.Action, cancel *signal.Signal) *core.Action {
	return l.Register(core.LoopLateUpdate, core.PhaseFinal, fn, cancel)
}

// RemoveStartFixedUpdate removes a handle from the Start phase of FixedUpdate.
func (l *Lifecycle) RemoveStartFixedUpdate(a *core.Action) {
	l.Remove(core.LoopFixedUpdate, core.PhaseStart, a)
}

// RemoveEarlyFixedUpdate removes a handle from the Early phase of FixedUpdate.
func (l *Lifecycle) RemoveEarlyFixedUpdate(a *core.Action) {
	l.Remove(core.LoopFixedUpdate, core.PhaseEarly, a)
}

// RemoveFixedUpdate removes a handle from the Usual phase of FixedUpdate.
func (l *Lifecycle) RemoveFixedUpdate(a *core.Action) {
	l.Remove(core.LoopFixedUpdate, core.PhaseUsual, a)
}

// RemoveLaterFixedUpdate removes a handle from the Later phase of FixedUpdate.
func (l *Lifecycle) RemoveLaterFixedUpdate(a *core.Action) {
	l.Remove(core.LoopFixedUpdate, core.PhaseLater, a)
}

// RemoveFinalFixedUpdate removes a handle from the Final phase of FixedUpdate.
func (l *Lifecycle) RemoveFinalFixedUpdate(a *core.Action) {
	l.Remove(core.LoopFixedUpdate, core.PhaseFinal, a)
}

// RemoveStartUpdate removes a handle from the Start phase of Update.
func (l *Lifecycle) RemoveStartUpdate(a *core.Action) {
	l.Remove(core.LoopUpdate, core.PhaseStart, a)
}

// RemoveEarlyUpdate removes a handle from the Early phase of Update.
func (l *Lifecycle) RemoveEarlyUpdate(a *core.Action) {
	l.Remove(core.LoopUpdate, core.PhaseEarly, a)
}

// RemoveUpdate removes a handle from the Usual phase of Update.
func (l *Lifecycle) RemoveUpdate(a *core.Action) {
	l.Remove(core.LoopUpdate, core.PhaseUsual, a)
}

// RemoveLaterUpdate removes a handle from the Later phase of Update.
func (l *Lifecycle) RemoveLaterUpdate(a *core.Action) {
	l.Remove(core.LoopUpdate, core.PhaseLater, a)
}

// RemoveFinalUpdate removes a handle from the Final phase of Update.
func (l *Lifecycle) RemoveFinalUpdate(a *core.Action) {
	l.Remove(core.LoopUpdate, core.PhaseFinal, a)
}

// RemoveStartLateUpdate removes a handle from the Start phase of LateUpdate.
func (l *Lifecycle) RemoveStartLateUpdate(a *core.Action) {
	l.Remove(core.LoopLateUpdate, core.PhaseStart, a)
}

// RemoveEarlyLateUpdate removes a handle from the Early phase of LateUpdate.
func (l *Lifecycle) RemoveEarlyLateUpdate(a *core.Action) {
	l.Remove(core.LoopLateUpdate, core.PhaseEarly, a)
}

// RemoveLateUpdate removes a handle from the Usual phase of LateUpdate.
func (l *Lifecycle) RemoveLateUpdate(a *core.Action) {
	l.Remove(core.LoopLateUpdate, core.PhaseUsual, a)
}

// RemoveLaterLateUpdate removes a handle from the Later phase of LateUpdate.
func (l *Lifecycle) RemoveLaterLateUpdate(a *core.Action) {
	l.Remove(core.LoopLateUpdate, core.PhaseLater, a)
}

// RemoveFinalLateUpdate removes a handle from the Final phase of LateUpdate.
func (l *Lifecycle) RemoveFinalLateUpdate(a *core.Action) {
	l.Remove(core.LoopLateUpdate, core.PhaseFinal, a)
}

// GetStartFixedUpdate snapshots the Start phase of FixedUpdate.
func (l *Lifecycle) GetStartFixedUpdate() []*core.Action {
	return l.Actions(core.LoopFixedUpdate, core.PhaseStart)
}

// GetEarlyFixedUpdate snapshots the Early phase of FixedUpdate.
func (l *Lifecycle) GetEarlyFixedUpdate() []*core.Action {
	return l.Actions(core.LoopFixedUpdate, core.PhaseEarly)
}

// GetFixedUpdate snapshots the Usual phase of FixedUpdate.
func (l *Lifecycle) GetFixedUpdate() []*core.Action {
	return l.Actions(core.LoopFixedUpdate, core.PhaseUsual)
}

// GetLaterFixedUpdate snapshots the Later phase of FixedUpdate.
func (l *Lifecycle) GetLaterFixedUpdate() []*core.Action {
	return l.Actions(core.LoopFixedUpdate, core.PhaseLater)
}

// GetFinalFixedUpdate snapshots the Final phase of FixedUpdate.
func (l *Lifecycle) GetFinalFixedUpdate() []*core.Action {
	return l.Actions(core.LoopFixedUpdate, core.PhaseFinal)
}

// GetStartUpdate snapshots the Start phase of Update.
func (l *Lifecycle) GetStartUpdate() []*core.Action {
	return l.Actions(core.LoopUpdate, core.PhaseStart)
}

// GetEarlyUpdate snapshots the Early phase of Update.
func (l *Lifecycle) GetEarlyUpdate() []*core.Action {
	return l.Actions(core.LoopUpdate, core.PhaseEarly)
}

// GetUpdate snapshots the Usual phase of Update.
func (l *Lifecycle) GetUpdate() []*core.Action {
	return l.Actions(core.LoopUpdate, core.PhaseUsual)
}

// GetLaterUpdate snapshots the Later phase of Update.
func (l *Lifecycle) GetLaterUpdate() []*core.Action {
	return l.Actions(core.LoopUpdate, core.PhaseLater)
}

// GetFinalUpdate snapshots the Final phase of Update.
func (l *Lifecycle) GetFinalUpdate() []*core.Action {
	return l.Actions(core.LoopUpdate, core.PhaseFinal)
}

// GetStartLateUpdate snapshots the Start phase of LateUpdate.
func (l *Lifecycle) GetStartLateUpdate() []*core.Action {
	return l.Actions(core.LoopLateUpdate, core.PhaseStart)
}

// GetEarlyLateUpdate snapshots the Early phase of LateUpdate.
func (l *Lifecycle) GetEarlyLateUpdate() []*core.Action {
	return l.Actions(core.LoopLateUpdate, core.PhaseEarly)
}

// GetLateUpdate snapshots the Usual phase of LateUpdate.
func (l *Lifecycle) GetLateUpdate() []*core.Action {
	return l.Actions(core.LoopLateUpdate, core.PhaseUsual)
}

// GetLaterLateUpdate snapshots the Later phase of LateUpdate.
func (l *Lifecycle) GetLaterLateUpdate() []*core.Action {
	return l.Actions(core.LoopLateUpdate, core.PhaseLater)
}

// GetFinalLateUpdate snapshots the Final phase of LateUpdate.
func (l *Lifecycle) GetFinalLateUpdate() []*core.Action {
	return l.Actions(core.LoopLateUpdate, core.PhaseFinal)
}
