package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

// Idle in-memory carts older than this are evicted; their snapshots keep
// living in the snapshot store.
const cartMaxIdle = 2 * time.Hour

// CatalogScheduler runs the recurring maintenance jobs: refreshing the
// best-seller ranking and trimming idle cart stores.
type CatalogScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	cartManager    *cart.Manager
}

func NewCatalogScheduler(catalogService service.CatalogService, cartManager *cart.Manager) *CatalogScheduler {
	return &CatalogScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		cartManager:    cartManager,
	}
}

// Start registers the jobs and launches the cron loop
func (s *CatalogScheduler) Start() error {
	// Best sellers once a day, before the morning traffic
	if _, err := s.cron.AddFunc("0 6 * * *", func() {
		logger.Info("Starting scheduled best-seller refresh", nil)

		if err := s.catalogService.RefreshBestSellers(); err != nil {
			logger.Error("Failed to refresh best sellers from scheduler", err, nil)
			return
		}

		logger.Info("Best-seller refresh finished", nil)
	}); err != nil {
		logger.Error("Failed to add cron job for best-seller refresh", err, nil)
		return err
	}

	// Idle cart eviction every hour
	if _, err := s.cron.AddFunc("@hourly", func() {
		evicted := s.cartManager.EvictIdle(cartMaxIdle)
		logger.Debug("Idle cart eviction finished", map[string]interface{}{
			"evicted": evicted,
			"live":    s.cartManager.Size(),
		})
	}); err != nil {
		logger.Error("Failed to add cron job for cart eviction", err, nil)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started", nil)
	return nil
}

// Stop halts the cron loop
func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped", nil)
}
