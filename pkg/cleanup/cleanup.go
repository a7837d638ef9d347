package cleanup

import (
	"context"
	"log"
	"time"
)

// Pruner removes alert overlay entries whose alerts are no longer derived.
type Pruner interface {
	PruneOverlay(ctx context.Context) (int, error)
}

// CleanupService periodically prunes stale alert read/dismiss state from
// Redis so the overlay does not grow without bound.
type CleanupService struct {
	pruner   Pruner
	interval time.Duration
	stopChan chan bool
}

func NewCleanupService(pruner Pruner, interval time.Duration) *CleanupService {
	return &CleanupService{
		pruner:   pruner,
		interval: interval,
		stopChan: make(chan bool),
	}
}

// Start begins the pruning loop. Blocks until Stop is called.
func (s *CleanupService) Start() {
	log.Printf("Starting alert overlay cleanup service (interval: %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run once on start
	s.pruneOverlay()

	for {
		select {
		case <-ticker.C:
			s.pruneOverlay()
		case <-s.stopChan:
			log.Println("Stopping alert overlay cleanup service")
			return
		}
	}
}

func (s *CleanupService) Stop() {
	s.stopChan <- true
}

func (s *CleanupService) pruneOverlay() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.pruner.PruneOverlay(ctx)
	if err != nil {
		log.Printf("Error pruning alert overlay: %v", err)
		return
	}

	if count > 0 {
		log.Printf("Pruned %d stale alert overlay entries", count)
	}
}
