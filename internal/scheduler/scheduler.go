// Package scheduler runs the background sweeps: overdue payment
// reminders and lease expiry nudges.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PaymentSweeper reminds tenants about overdue pending payments.
type PaymentSweeper interface {
	CheckPendingPayments(ctx context.Context) (int, error)
}

// LeaseSweeper reminds both parties about leases ending soon.
type LeaseSweeper interface {
	RemindExpiring(ctx context.Context, days int) (int, error)
}

type Scheduler struct {
	cron         *cron.Cron
	payments     PaymentSweeper
	leases       LeaseSweeper
	spec         string
	reminderDays int
	isRunning    bool
}

// New builds a scheduler running both sweeps on the same cron spec
// (typically daily).
func New(payments PaymentSweeper, leases LeaseSweeper, spec string, reminderDays int) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		payments:     payments,
		leases:       leases,
		spec:         spec,
		reminderDays: reminderDays,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.isRunning = true
	log.Printf("scheduler: started (cron %q, lease reminder window %d days)", s.spec, s.reminderDays)
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	log.Println("scheduler: stopped")
}

// RunNow executes one sweep immediately (manual trigger).
func (s *Scheduler) RunNow() { s.runSweep() }

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if n, err := s.payments.CheckPendingPayments(ctx); err != nil {
		log.Printf("scheduler: payment sweep failed: %v", err)
	} else {
		log.Printf("scheduler: payment sweep sent %d reminders", n)
	}

	if n, err := s.leases.RemindExpiring(ctx, s.reminderDays); err != nil {
		log.Printf("scheduler: lease expiry sweep failed: %v", err)
	} else {
		log.Printf("scheduler: lease expiry sweep nudged %d leases", n)
	}
}
