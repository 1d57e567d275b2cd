// ABOUTME: Enrichment worker pre-warms metadata and photo color caches in the background
// ABOUTME: Provides a managed worker pool fed by restaurant lookup results

package workers

import (
	"context"
	"sync"
	"time"

	coreconfig "mealmap-api/core/config"
	"mealmap-api/core/domain"
	"mealmap-api/core/interfaces"
	"mealmap-api/core/services"
)

// enrichmentJob carries the website URLs from one lookup result set.
type enrichmentJob struct {
	websites []string
}

// WorkerConfig holds configuration for the enrichment worker pool
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  100,
	}
}

// jobTimeout bounds a single job so one slow site cannot stall a
// worker indefinitely.
const jobTimeout = 30 * time.Second

// Enricher pre-warms the metadata and photo color caches for
// restaurants returned by lookups, so the client's follow-up detail
// requests hit warm entries.
type Enricher struct {
	metadata   *services.SiteMetadataService
	photoColor *services.PhotoColorService
	logger     interfaces.Logger
	enrichment coreconfig.EnrichmentConfig

	jobs    chan enrichmentJob
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped sync.Once
}

// NewEnricher creates an enrichment worker pool and starts its workers.
func NewEnricher(
	metadata *services.SiteMetadataService,
	photoColor *services.PhotoColorService,
	logger interfaces.Logger,
	cfg WorkerConfig,
	opts ...coreconfig.EnrichmentOption,
) *Enricher {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultWorkerConfig().QueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Enricher{
		metadata:   metadata,
		photoColor: photoColor,
		logger:     logger,
		enrichment: coreconfig.ApplyEnrichmentOptions(opts...),
		jobs:       make(chan enrichmentJob, cfg.QueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}

	for i := 0; i < cfg.MaxWorkers; i++ {
		e.wg.Add(1)
		go e.worker()
	}
	return e
}

// EnqueueRestaurants queues the websites and photos of a result set for
// pre-warming. Returns false when the queue is full; the job is dropped
// rather than blocking the caller.
func (e *Enricher) EnqueueRestaurants(restaurants []domain.Restaurant) bool {
	if !e.enrichment.PrefetchMetadata {
		return true
	}

	job := enrichmentJob{}
	for _, r := range restaurants {
		if r.Website != "" {
			job.websites = append(job.websites, r.Website)
		}
	}
	if len(job.websites) == 0 {
		return true
	}

	select {
	case e.jobs <- job:
		return true
	default:
		if e.logger != nil {
			e.logger.Warn("Enrichment queue full, dropping job", map[string]interface{}{
				"websites": len(job.websites),
			})
		}
		return false
	}
}

// worker drains the job queue until the enricher stops.
func (e *Enricher) worker() {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			return
		case job, ok := <-e.jobs:
			if !ok {
				return
			}
			e.process(job)
		}
	}
}

// process pre-warms the caches for one job. Preview images discovered
// in the metadata feed straight into color pre-warming. Failures are
// already logged by the services; the point is warming, not
// completeness.
func (e *Enricher) process(job enrichmentJob) {
	ctx, cancel := context.WithTimeout(e.ctx, jobTimeout)
	defer cancel()

	if e.metadata == nil {
		return
	}
	results := e.metadata.ExtractMetadataBatch(ctx, job.websites)

	if e.photoColor == nil || !e.enrichment.PrefetchColors {
		return
	}
	for _, meta := range results {
		if ctx.Err() != nil {
			return
		}
		if meta.Image != "" {
			e.photoColor.ExtractColor(ctx, meta.Image)
		}
	}
}

// Stop cancels in-flight work and waits for the workers to exit.
func (e *Enricher) Stop() {
	e.stopped.Do(func() {
		e.cancel()
		e.wg.Wait()
	})
}
