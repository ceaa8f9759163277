// Package refresh runs the periodic re-fetch of the order list.
//
// A tick is skipped, never queued, while another refresh is in flight, while
// a save is in flight, while the view is hidden, or while an editor is open.
// Fetch failures are retried a bounded number of times and then only logged;
// the previous data stays in place until the next tick.
package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

const (
	DefaultInterval   = 60 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = 5 * time.Second
)

var ErrAlreadyStarted = errors.New("refresh scheduler already started")

type Config struct {
	Interval   time.Duration
	Retries    int
	RetryDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Retries < 0 {
		c.Retries = 0
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}

// FetchFunc pulls the full order set.
type FetchFunc func(ctx context.Context) ([]entities.Order, error)

// ApplyFunc receives the result of a successful fetch.
type ApplyFunc func(orders []entities.Order)

// Contention holds the predicates consulted on every tick. A nil Saving or
// EditorOpen reads as false; a nil Visible reads as true.
type Contention struct {
	Saving     func() bool
	Visible    func() bool
	EditorOpen func() bool
}

func (c Contention) blocked() (bool, string) {
	switch {
	case c.Saving != nil && c.Saving():
		return true, "save in flight"
	case c.Visible != nil && !c.Visible():
		return true, "view hidden"
	case c.EditorOpen != nil && c.EditorOpen():
		return true, "editor open"
	}
	return false, ""
}

type Scheduler struct {
	cfg        Config
	fetch      FetchFunc
	apply      ApplyFunc
	contention Contention
	logger     zerolog.Logger

	refreshing atomic.Bool

	mu     sync.Mutex
	cron   gocron.Scheduler
	cancel context.CancelFunc
}

func New(cfg Config, fetch FetchFunc, apply ApplyFunc, contention Contention) *Scheduler {
	return &Scheduler{
		cfg:        cfg.withDefaults(),
		fetch:      fetch,
		apply:      apply,
		contention: contention,
		logger:     log.With().Str("component", "refresh").Logger(),
	}
}

// IsRefreshing reports whether a fetch cycle is currently running.
func (s *Scheduler) IsRefreshing() bool {
	return s.refreshing.Load()
}

// Tick runs one refresh cycle unless contention says to skip it. It reports
// whether the cycle ran. A skipped tick leaves IsRefreshing untouched.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if blocked, reason := s.contention.blocked(); blocked {
		s.logger.Debug().Str("reason", reason).Msg("refresh skipped")
		return false
	}
	if !s.refreshing.CompareAndSwap(false, true) {
		s.logger.Debug().Str("reason", "refresh in flight").Msg("refresh skipped")
		return false
	}
	defer s.refreshing.Store(false)

	attempts := s.cfg.Retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return true
			case <-time.After(s.cfg.RetryDelay):
			}
		}

		orders, err := s.fetch(ctx)
		if err == nil {
			if ctx.Err() != nil {
				return true
			}
			if s.apply != nil {
				s.apply(orders)
			}
			return true
		}
		if ctx.Err() != nil {
			return true
		}
		s.logger.Warn().Err(err).Int("attempt", attempt).Int("attempts", attempts).Msg("refresh failed")
	}

	s.logger.Error().Int("attempts", attempts).Msg("refresh gave up until next tick")
	return true
}

// Start schedules Tick every Interval until ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return ErrAlreadyStarted
	}

	cron, err := gocron.NewScheduler()
	if err != nil {
		return errors.Wrap(err, "failed to create refresh scheduler")
	}

	runCtx, cancel := context.WithCancel(ctx)
	_, err = cron.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(func() {
			s.Tick(runCtx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = cron.Shutdown()
		return errors.Wrap(err, "failed to schedule refresh job")
	}

	cron.Start()
	s.cron = cron
	s.cancel = cancel

	s.logger.Info().Dur("interval", s.cfg.Interval).Int("retries", s.cfg.Retries).Msg("refresh scheduler started")
	return nil
}

// Stop cancels any in-flight cycle and stops all recurring work. It is safe
// to call more than once.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}
	s.cancel()
	err := s.cron.Shutdown()
	s.cron = nil
	s.cancel = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop refresh scheduler")
	}
	s.logger.Info().Msg("refresh scheduler stopped")
	return nil
}
