package upload

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tourcopy/tourism-content-be/internal/shared/utils"
)

// Sweeper periodically removes orphaned uploads. Request handlers delete
// their own files; this covers crashes and mid-pipeline faults.
type Sweeper struct {
	cron   *cron.Cron
	store  *Store
	maxAge time.Duration
}

// NewSweeper schedules a sweep of the store on the given cron expression
// (e.g. "*/10 * * * *" for every ten minutes).
func NewSweeper(store *Store, schedule string, maxAge time.Duration) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		store:  store,
		maxAge: maxAge,
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}

	return s, nil
}

// Start starts the sweeper
func (s *Sweeper) Start() {
	s.cron.Start()
	utils.LogInfo("Upload sweeper started", map[string]interface{}{
		"dir":     s.store.BasePath(),
		"max_age": s.maxAge.String(),
	})
}

// Stop stops the sweeper
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	removed, err := s.store.SweepOlderThan(s.maxAge)
	if err != nil {
		utils.LogError("Upload sweep failed", err, nil)
		return
	}
	if removed > 0 {
		utils.LogInfo("Swept orphaned uploads", map[string]interface{}{"removed": removed})
	}
}
