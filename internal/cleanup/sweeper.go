package cleanup

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper runs the purger on a fixed interval, for deployments that
// want a tighter staleness bound than lazy cleanup gives.
type Sweeper struct {
	cron   *cron.Cron
	purger Purger
	log    zerolog.Logger
}

func NewSweeper(purger Purger, intervalMinutes int, log zerolog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		purger: purger,
		log:    log,
	}

	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	if _, err := s.cron.AddFunc(spec, func() {
		s.purger.Run(context.Background())
	}); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sweeper) Start() {
	s.log.Info().Msg("cleanup sweeper started")
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
