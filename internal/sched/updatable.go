package sched

// Tick is a discrete unit of simulated time. It has no relation to wall-clock
// time; the queue only ever compares ticks.
type Tick uint64

// Updatable is the contract an entity implements to be driven by a Queue.
//
// All three methods are called from the game-loop goroutine only. While an
// entity is scheduled the queue holds it exclusively: the pushing code must
// not mutate it again until the queue has dropped it (Update returned
// again=false, or the entity was deactivated and discarded on its turn).
type Updatable interface {
	// Update performs one unit of work for this entity, appending any
	// externally observable outcomes to sink. It returns the number of ticks
	// until the entity is next eligible and again=true to stay scheduled, or
	// again=false to be dropped permanently. A zero delay with again=true is
	// valid and makes the entity immediately eligible again.
	//
	// Update is invoked only by Queue.Step, and only after IsActive has been
	// confirmed true for that turn. Calling it from anywhere else bypasses
	// the queue's invariants and is a programming error.
	Update(sink *Sink) (delay Tick, again bool)

	// IsActive reports whether the entity should still be processed. The
	// queue checks it immediately before every prospective Update call.
	IsActive() bool

	// Deactivate marks the entity permanently inactive. After it returns,
	// IsActive must report false forever. This is the only way to cancel a
	// pending turn: the entry stays in the queue's storage until its tick
	// comes up, at which point it is discarded without being invoked.
	Deactivate()
}
