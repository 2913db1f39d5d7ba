package session

import (
	"context"

	"github.com/sarchlab/cashsim/atm"
	"github.com/sarchlab/cashsim/datarecording"
	"github.com/sarchlab/cashsim/feed"
	"github.com/sarchlab/cashsim/monitoring"
	"github.com/sarchlab/cashsim/playback"
)

// A Session is one run of the playback viewer core, from configuration
// fetch to feed teardown.
type Session struct {
	id          string
	serverAddr  string
	tokens      feed.Tokens
	alertTypes  []string
	startPaused bool

	api       *feed.API
	recorder  datarecording.Recorder
	monitor   *monitoring.Monitor
	client    *feed.Client
	scheduler *playback.Scheduler

	// MonitorAddr is the address of the monitoring server, available
	// after Run started it.
	MonitorAddr string
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Scheduler returns the playback scheduler, available once Run has
// bootstrapped the session.
func (s *Session) Scheduler() *playback.Scheduler {
	return s.scheduler
}

// Run bootstraps and drives the session: fetch the default configuration,
// start a simulation from it, project the entity set, connect the feed,
// and pump batches until the context ends or the connection breaks.
func (s *Session) Run(ctx context.Context) error {
	cfg, err := s.api.FetchDefaultConfig(ctx)
	if err != nil {
		return err
	}

	if err := s.api.StartSimulation(ctx, cfg); err != nil {
		return err
	}

	s.bootstrap(cfg)

	if err := s.client.Connect(ctx); err != nil {
		return err
	}
	defer s.Terminate()

	return s.client.Run(ctx)
}

func (s *Session) bootstrap(cfg *atm.Config) {
	entities := atm.NewSet(cfg.Entities())
	projector := playback.NewProjector(s.alertTypes)

	s.client = feed.NewClient("ws://"+s.serverAddr+"/websocket", s.tokens)

	s.scheduler = playback.
		NewScheduler(entities, projector, s.client, playback.WallClock{}).
		WithStartHour(cfg.StartHour())
	if s.recorder != nil {
		s.scheduler.WithRecorder(s.recorder)
	}
	if s.startPaused {
		s.scheduler.StartPaused()
	}

	s.client.DeliverTo(s.scheduler)

	if s.monitor != nil {
		s.monitor.RegisterScheduler(s.scheduler)
		s.monitor.RegisterTierSelector(playback.TierSelector{
			DefaultRefill: cfg.Default.RefillAmount,
		})
		s.monitor.RegisterComponent("scheduler", s.scheduler)
		s.monitor.RegisterComponent("feed", s.client)
		s.MonitorAddr = s.monitor.StartServer()
	}
}

// Terminate ends the session. Pending continuations are cancelled so they
// cannot touch a successor session's state.
func (s *Session) Terminate() {
	if s.scheduler != nil {
		s.scheduler.Close()
	}

	if s.client != nil {
		s.client.Close()
	}

	if s.recorder != nil {
		s.recorder.Close()
	}
}
