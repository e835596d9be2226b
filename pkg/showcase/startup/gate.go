// Package startup owns the application's readiness gate.
//
// Development builds start Initializing and flip to Ready once, after the
// first frame has been drawn. The gap reserves a slot for restoring a
// persisted navigation state; no restoration is performed today and the
// initial state is always nil.
package startup

import (
	"go.uber.org/atomic"
)

// PersistenceKey is reserved for a persisted navigation state.
// Nothing reads or writes it.
const PersistenceKey = "NAVIGATION_STATE_V1"

// State is the readiness of the application.
type State int32

const (
	Initializing State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// NavigationState is a restorable navigation position, Home first.
type NavigationState struct {
	Routes []string
}

// Gate is a one-shot Initializing → Ready transition.
type Gate struct {
	state    *atomic.Int32
	done     chan struct{}
	restored *NavigationState
}

// NewGate returns a gate that starts Initializing only in development builds.
func NewGate(development bool) *Gate {
	g := &Gate{
		state: atomic.NewInt32(int32(Ready)),
		done:  make(chan struct{}),
	}
	if development {
		g.state.Store(int32(Initializing))
	} else {
		close(g.done)
	}
	return g
}

// State returns the current state.
func (g *Gate) State() State {
	return State(g.state.Load())
}

// IsReady reports whether the gate has opened.
func (g *Gate) IsReady() bool {
	return g.State() == Ready
}

// Complete opens the gate with an optional restored state. Only the first
// call has an effect; it returns false for every later call and for gates
// that started Ready.
func (g *Gate) Complete(restored *NavigationState) bool {
	if !g.state.CompareAndSwap(int32(Initializing), int32(Ready)) {
		return false
	}
	g.restored = restored
	close(g.done)
	return true
}

// Done is closed once the gate is Ready.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// InitialState is the navigation state to start from, nil for a fresh start.
// Only meaningful once Done is closed.
func (g *Gate) InitialState() *NavigationState {
	return g.restored
}
