// Package scheduler wraps robfig/cron to run periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner deletes usage rows older than a cutoff date.
type Pruner interface {
	Prune(ctx context.Context, before string) (int64, error)
}

// Engine manages the cron scheduler for the usage-retention prune.
type Engine struct {
	cron          *cron.Cron
	store         Pruner
	schedule      string
	retentionDays int
}

// New creates a cron-based Engine. schedule is a 6-field cron expression
// (seconds first); retentionDays controls how far back rows are kept.
func New(store Pruner, schedule string, retentionDays int) *Engine {
	return &Engine{
		cron:          cron.New(cron.WithSeconds()),
		store:         store,
		schedule:      schedule,
		retentionDays: retentionDays,
	}
}

// Start registers the prune job and begins the cron engine. The engine
// stops when ctx is cancelled.
func (e *Engine) Start(ctx context.Context) error {
	if _, err := e.cron.AddFunc(e.schedule, func() { e.prune(ctx) }); err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	e.cron.Start()
	go func() {
		<-ctx.Done()
		e.cron.Stop()
	}()
	return nil
}

func (e *Engine) prune(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -e.retentionDays).Format("2006-01-02")
	n, err := e.store.Prune(ctx, cutoff)
	if err != nil {
		log.Printf("scheduler: prune: %v", err)
		return
	}
	if n > 0 {
		log.Printf("scheduler: pruned %d usage rows older than %s", n, cutoff)
	}
}
