package sched

import "github.com/duskmire/server/internal/msg"

// Effect is one externally observable outcome of a single Update call. The
// queue transports effects without inspecting them; whoever drives the loop
// drains the sink and interprets each variant. New variants are added by
// declaring another type with the isEffect marker.
type Effect interface {
	isEffect()
}

// Log is the effect variant carrying a message for the player log.
type Log struct {
	Message msg.Message
}

func (Log) isEffect() {}

// Sink is the ordered, append-only buffer handed to every Update call.
// Effects come back out of Drain in exactly the order they were emitted.
type Sink struct {
	effects []Effect
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{effects: make([]Effect, 0, 16)}
}

// Emit appends one effect.
func (s *Sink) Emit(e Effect) {
	s.effects = append(s.effects, e)
}

// Len reports the number of undrained effects.
func (s *Sink) Len() int { return len(s.effects) }

// Drain returns all buffered effects in emission order and resets the sink.
// The returned slice is owned by the caller.
func (s *Sink) Drain() []Effect {
	out := s.effects
	s.effects = make([]Effect, 0, cap(out))
	return out
}
