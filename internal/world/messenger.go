package world

import (
	"github.com/duskmire/server/internal/msg"
	"github.com/duskmire/server/internal/sched"
)

// Messenger is a one-shot schedulable that delivers a single announcement on
// its turn and then leaves the queue. Scenario files use it for timed events.
type Messenger struct {
	message  msg.Message
	inactive bool
}

// NewMessenger builds a messenger announcing body on behalf of from.
func NewMessenger(from, body string) *Messenger {
	return &Messenger{
		message: msg.Normal(
			msg.Plain("Message from"),
			msg.Bold(from),
			msg.Plain(":"),
			msg.Italic(body),
		),
	}
}

// Update emits the announcement and asks to be dropped.
func (m *Messenger) Update(sink *sched.Sink) (sched.Tick, bool) {
	sink.Emit(sched.Log{Message: m.message})
	return 0, false
}

func (m *Messenger) IsActive() bool { return !m.inactive }

func (m *Messenger) Deactivate() { m.inactive = true }

// Message returns the announcement, mainly for tests.
func (m *Messenger) Message() msg.Message { return m.message }
