// Package state tracks where the HTTP server is in its shutdown sequence.
package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace_period"
	case ServerStateInCleanupPeriod:
		return "cleanup_period"
	default:
		return "starting"
	}
}

type Tracker struct {
	state atomic.Int32
}

func New() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Set(s ServerState) {
	t.state.Store(int32(s))
}

func (t *Tracker) Get() ServerState {
	return ServerState(t.state.Load())
}

func (t *Tracker) IsReady() bool {
	return t.Get() == ServerStateReady
}
