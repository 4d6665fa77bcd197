// Package notify decouples notification delivery from the
// transactional core. Sends are queued, delivered by a background
// worker, and failures are logged only — a failed email never rolls
// back a committed state transition.
package notify

import (
	"log"
	"sync"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the delivery collaborator (SMTP in production).
type Mailer interface {
	Send(to, subject, body string) error
}

// Sender is what usecases depend on.
type Sender interface {
	Notify(m Message)
}

// Dispatcher is the buffered fire-and-forget queue. When the buffer is
// full the message is dropped with a log line rather than blocking a
// request.
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func NewDispatcher(mailer Mailer, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for m := range d.queue {
		if m.To == "" {
			continue
		}
		if err := d.mailer.Send(m.To, m.Subject, m.Body); err != nil {
			log.Printf("notify: send %q to %s failed: %v", m.Subject, m.To, err)
		}
	}
}

func (d *Dispatcher) Notify(m Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	select {
	case d.queue <- m:
	default:
		log.Printf("notify: queue full, dropping %q to %s", m.Subject, m.To)
	}
}

// Stop drains queued messages and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}
