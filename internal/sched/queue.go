package sched

import "container/heap"

// entry binds a scheduled tick to the entity due at that tick. seq is a
// monotonically increasing insertion number used as the secondary heap key,
// so entries sharing a tick pop in push order and a run replays identically.
type entry struct {
	tick Tick
	seq  uint64
	ent  Updatable
}

// entryHeap implements heap.Interface with min-tick ordering.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].tick != h[j].tick {
		return h[i].tick < h[j].tick
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{} // release the entity reference
	*h = old[:n-1]
	return e
}

// Queue drives the simulation: it keeps every scheduled entity ordered by
// tick and processes exactly one per Step call. Inactive entities are never
// scanned for; they are discarded lazily when their turn comes up.
//
// A Queue is owned by a single goroutine. Entities handed to Push belong to
// the queue until it drops them (see Updatable).
type Queue struct {
	entries entryHeap
	pending map[Updatable]struct{}
	nextSeq uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{
		entries: make(entryHeap, 0, 64),
		pending: make(map[Updatable]struct{}, 64),
	}
}

// Push schedules ent to be processed no earlier than tick. The entity must
// not already be scheduled in this queue; a double push would hand two live
// entries the same entity, so it panics rather than silently corrupting the
// schedule.
func (q *Queue) Push(tick Tick, ent Updatable) {
	if _, ok := q.pending[ent]; ok {
		panic("sched: entity pushed while already scheduled")
	}
	q.pending[ent] = struct{}{}
	heap.Push(&q.entries, entry{tick: tick, seq: q.nextSeq, ent: ent})
	q.nextSeq++
}

// Step advances the simulation by exactly one processed entity.
//
// It pops entries in ascending tick order, discarding inactive ones, until it
// finds an active entity. That entity's Update runs with the given sink; if
// it asks for another turn it is rescheduled at now+delay, otherwise it is
// dropped. Step returns the processed entry's tick and true, or (0, false)
// once no active entities remain — the normal end of a run, not a failure.
//
// Across consecutive calls the returned ticks never decrease.
func (q *Queue) Step(sink *Sink) (Tick, bool) {
	var e entry
	for {
		if q.entries.Len() == 0 {
			return 0, false
		}
		e = heap.Pop(&q.entries).(entry)
		delete(q.pending, e.ent)
		if e.ent.IsActive() {
			break
		}
	}

	now := e.tick
	if delay, again := e.ent.Update(sink); again {
		q.Push(now+delay, e.ent)
	}
	return now, true
}

// Len reports how many entries the queue is holding, including entries whose
// entities have been deactivated but not yet discarded.
func (q *Queue) Len() int { return q.entries.Len() }

// Scheduled reports whether ent currently has a live entry in the queue.
func (q *Queue) Scheduled(ent Updatable) bool {
	_, ok := q.pending[ent]
	return ok
}
