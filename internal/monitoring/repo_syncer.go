package monitoring

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/services"
)

// RepoSyncer periodically refreshes the GitHub repository cache on a cron
// schedule.
type RepoSyncer struct {
	repoSvc  services.RepoServiceProvider
	schedule cron.Schedule
	ticker   *time.Ticker
	done     chan bool
	lastRun  time.Time
}

// NewRepoSyncer creates a RepoSyncer from a standard cron expression.
func NewRepoSyncer(repoSvc services.RepoServiceProvider, cronExpr string) (*RepoSyncer, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &RepoSyncer{
		repoSvc:  repoSvc,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the syncer's ticking loop.
func (rs *RepoSyncer) Run() {
	log.Info().Msg("Starting background GitHub repo syncer...")
	rs.ticker = time.NewTicker(1 * time.Minute)
	defer rs.ticker.Stop()

	// Run once immediately on start
	rs.sync()

	for {
		select {
		case <-rs.done:
			log.Info().Msg("Stopping background GitHub repo syncer.")
			return
		case <-rs.ticker.C:
			rs.checkAndSync()
		}
	}
}

// Stop halts the syncer.
func (rs *RepoSyncer) Stop() {
	rs.done <- true
}

// checkAndSync runs a sync when the cron schedule has come due since the
// last run.
func (rs *RepoSyncer) checkAndSync() {
	next := rs.schedule.Next(rs.lastRun)
	if time.Now().Before(next) {
		return
	}
	rs.sync()
}

func (rs *RepoSyncer) sync() {
	rs.lastRun = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := rs.repoSvc.SyncRepos(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("GitHub repo sync failed")
		return
	}
	log.Info().Int("repos", count).Msg("GitHub repo sync complete")
}
