// Package scheduler runs the optional periodic overdue-loan report. The job
// only reads the ledger and logs what it finds; circulation state is never
// touched from here.
package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/smartlib/library/internal/entities"
)

// OverdueLister is the slice of the ledger repository the reporter needs.
type OverdueLister interface {
	OpenOverdue(now time.Time) ([]entities.BorrowRecord, error)
}

// OverdueReporter logs open loans past their due date on a cron schedule.
type OverdueReporter struct {
	ledger OverdueLister

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewOverdueReporter creates a reporter instance.
func NewOverdueReporter(ledger OverdueLister) *OverdueReporter {
	return &OverdueReporter{
		ledger: ledger,
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start schedules the report. Returns an error for an invalid schedule.
func (r *OverdueReporter) Start(schedule string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}

	entryID, err := r.cron.AddFunc(schedule, r.runReport)
	if err != nil {
		return err
	}
	r.entryID = entryID

	r.cron.Start()
	r.isRunning = true
	log.Info().Str("schedule", schedule).Msg("overdue report scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running report to finish.
func (r *OverdueReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.isRunning = false
}

func (r *OverdueReporter) runReport() {
	now := time.Now()
	overdue, err := r.ledger.OpenOverdue(now)
	if err != nil {
		log.Error().Err(err).Msg("overdue report failed")
		return
	}
	if len(overdue) == 0 {
		log.Info().Msg("overdue report: no overdue loans")
		return
	}
	for _, rec := range overdue {
		log.Warn().
			Str("record", rec.RecordID).
			Str("book", rec.BookID).
			Str("member", rec.UserID).
			Time("due", rec.DueDate).
			Msg("loan overdue")
	}
	log.Info().Int("count", len(overdue)).Msg("overdue report complete")
}
