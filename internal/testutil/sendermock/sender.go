package sendermock

import (
	"sync"

	"rentease-backend/internal/notify"
)

var _ notify.Sender = (*Sender)(nil)

// Sender records every notification synchronously, for assertions.
type Sender struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (s *Sender) Notify(m notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, m)
}

func (s *Sender) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}
