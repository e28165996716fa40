package scheduler

import (
	"context"
	"time"

	"github.com/ikkim/udonggeum-storefront/pkg/logger"
	"github.com/robfig/cron/v3"
)

// sweepSpec is how often idle rate limiter buckets are dropped.
const sweepSpec = "@every 1m"

type CatalogReloader interface {
	Reload(ctx context.Context) error
}

type LimiterSweeper interface {
	Sweep(now time.Time) int
}

// StorefrontScheduler runs the periodic catalog refresh and the rate limiter
// sweep.
type StorefrontScheduler struct {
	cron        *cron.Cron
	catalog     CatalogReloader
	refreshSpec string
	timeout     time.Duration
	limiter     LimiterSweeper
}

// NewStorefrontScheduler creates the scheduler. An empty refreshSpec
// disables the catalog refresh; a nil limiter disables the sweep.
func NewStorefrontScheduler(catalog CatalogReloader, refreshSpec string, timeout time.Duration, limiter LimiterSweeper) *StorefrontScheduler {
	return &StorefrontScheduler{
		cron:        cron.New(),
		catalog:     catalog,
		refreshSpec: refreshSpec,
		timeout:     timeout,
		limiter:     limiter,
	}
}

// Start registers the jobs and starts the cron runner.
func (s *StorefrontScheduler) Start() error {
	if s.refreshSpec != "" {
		if _, err := s.cron.AddFunc(s.refreshSpec, s.refreshCatalog); err != nil {
			logger.Error("Failed to add cron job for catalog refresh", err, logger.Fields{
				"spec": s.refreshSpec,
			})
			return err
		}
	}

	if s.limiter != nil {
		if _, err := s.cron.AddFunc(sweepSpec, s.sweepLimiter); err != nil {
			logger.Error("Failed to add cron job for rate limiter sweep", err)
			return err
		}
	}

	s.cron.Start()
	logger.Info("Storefront scheduler started successfully", logger.Fields{
		"catalog_refresh": s.refreshSpec,
		"jobs":            len(s.cron.Entries()),
	})
	return nil
}

// Stop waits for running jobs to finish.
func (s *StorefrontScheduler) Stop() {
	logger.Info("Stopping storefront scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Storefront scheduler stopped", nil)
}

func (s *StorefrontScheduler) refreshCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	logger.Info("Starting scheduled catalog refresh", nil)
	if err := s.catalog.Reload(ctx); err != nil {
		// the previous snapshot keeps serving
		logger.Error("Failed to refresh catalog from scheduler", err)
		return
	}
	logger.Info("Successfully refreshed catalog from scheduler", nil)
}

func (s *StorefrontScheduler) sweepLimiter() {
	if removed := s.limiter.Sweep(time.Now()); removed > 0 {
		logger.Debug("Swept idle rate limiter buckets", logger.Fields{
			"removed": removed,
		})
	}
}
