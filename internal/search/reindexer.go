package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"sealcheck/internal/models"
)

// Loader supplies the complete category and keyword data set for an index
// build. The category store implements it.
type Loader interface {
	ListAll() ([]models.Category, error)
	ListKeywords() ([]models.Keyword, error)
}

// Reindexer rebuilds the search index from the data store on a fixed
// schedule, so edits made by the offline data-preparation process become
// searchable without a restart. A failed rebuild keeps the previous good
// index in service and is only logged.
type Reindexer struct {
	loader    Loader
	holder    *Holder
	scheduler gocron.Scheduler
	onSwap    func(context.Context)
}

// NewReindexer creates a reindexer that rebuilds every interval. onSwap is
// invoked after each successful swap (used to drop cached search responses);
// it may be nil.
func NewReindexer(loader Loader, holder *Holder, interval time.Duration, onSwap func(context.Context)) (*Reindexer, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	r := &Reindexer{
		loader:    loader,
		holder:    holder,
		scheduler: scheduler,
		onSwap:    onSwap,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := r.Rebuild(ctx); err != nil {
				slog.Error("scheduled reindex failed, keeping previous index", "error", err)
			}
		}),
		gocron.WithName("search-reindex"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("register reindex job: %w", err)
	}

	return r, nil
}

// Rebuild loads the full data set, builds a fresh index, and swaps it in.
// On any error the holder is left untouched.
func (r *Reindexer) Rebuild(ctx context.Context) error {
	categories, err := r.loader.ListAll()
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	keywords, err := r.loader.ListKeywords()
	if err != nil {
		return fmt.Errorf("load keywords: %w", err)
	}

	ix, err := Build(categories, keywords)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	r.holder.Swap(ix)
	slog.Info("search index rebuilt",
		"categories", ix.Categories(),
		"keywords", ix.Keywords(),
	)

	if r.onSwap != nil {
		r.onSwap(ctx)
	}
	return nil
}

// Start begins the schedule. The first build should already have happened
// synchronously at startup via Rebuild.
func (r *Reindexer) Start() {
	r.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (r *Reindexer) Stop() error {
	return r.scheduler.Shutdown()
}
