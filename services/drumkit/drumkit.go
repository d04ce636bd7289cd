// Package drumkit is the service loop gluing the subsystems together:
// hardware reset sequencing, session bring-up, and the single control
// thread that alternates transport servicing, classifier feed, playback
// dispatch, and input servicing.
package drumkit

import (
	"context"

	"github.com/rs/zerolog"

	"airdrums-go/services/gesture"
	"airdrums-go/session"
	"airdrums-go/types"
)

// Link is the slice of the transport the service sequences directly. The
// session layer owns everything else about the link.
type Link interface {
	HardwareReset()
}

// Trigger fires one percussion voice; playback blocks until done.
type Trigger interface {
	Play(cat types.Category)
}

// Servicer is an optional per-cycle hook (the debug console).
type Servicer interface {
	Service()
}

// Delayer is the subset of hal.Delayer the loop needs.
type Delayer interface {
	DelayMS(ms uint32)
}

// Config tunes bring-up and reporting.
type Config struct {
	// SettleMS is the post-reset wait before the open handshake; the hub
	// needs ~94 ms to boot, 100 is the shipped margin.
	SettleMS uint32
	// AdvertCycles is how many 10 ms service rounds run after a
	// successful open so the hub's advertisements complete before
	// reports are enabled.
	AdvertCycles int
	// ReportIntervalUS is requested for both report types.
	ReportIntervalUS uint32
}

func DefaultConfig() Config {
	return Config{SettleMS: 100, AdvertCycles: 200, ReportIntervalUS: 10_000}
}

type Service struct {
	link Link
	hub  session.Hub
	cls  *gesture.Classifier
	trig Trigger
	dly  Delayer
	cfg  Config
	log  zerolog.Logger

	kick *Button
	zero *Button
	con  Servicer // may be nil

	pending  *types.SensorSample
	sample   types.SensorSample // storage behind pending, reused per cycle
	sensorOK bool
}

func New(link Link, hub session.Hub, cls *gesture.Classifier, trig Trigger,
	kick, zero *Button, con Servicer, dly Delayer, cfg Config, log zerolog.Logger) *Service {
	if cfg.SettleMS == 0 {
		cfg.SettleMS = DefaultConfig().SettleMS
	}
	if cfg.AdvertCycles == 0 {
		cfg.AdvertCycles = DefaultConfig().AdvertCycles
	}
	if cfg.ReportIntervalUS == 0 {
		cfg.ReportIntervalUS = DefaultConfig().ReportIntervalUS
	}
	return &Service{
		link: link, hub: hub, cls: cls, trig: trig,
		kick: kick, zero: zero, con: con,
		dly: dly, cfg: cfg, log: log,
	}
}

// Run brings the link up and then serves until the context is cancelled.
// No failure in here halts the loop: an open failure only disables
// sensor-driven hits, leaving the manual trigger and console working.
func (s *Service) Run(ctx context.Context) {
	s.bringUp()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("service loop stopped")
			return
		default:
		}
		s.cycle()
		s.dly.DelayMS(1)
	}
}

func (s *Service) bringUp() {
	s.log.Info().Msg("resetting sensor hub")
	s.link.HardwareReset()
	s.dly.DelayMS(s.cfg.SettleMS)

	if err := s.hub.Open(); err != nil {
		s.log.Warn().Err(err).Msg("session open failed, sensor hits disabled")
		s.sensorOK = false
		return
	}
	s.sensorOK = true

	// Let the hub finish advertising before configuring reports.
	for i := 0; i < s.cfg.AdvertCycles; i++ {
		s.hub.Service()
		s.dly.DelayMS(10)
	}

	s.hub.SetSampleCallback(s.onSample)

	if err := s.hub.EnableReport(types.SensorRotation, s.cfg.ReportIntervalUS); err != nil {
		s.log.Warn().Err(err).Msg("rotation report rejected")
	}
	if err := s.hub.EnableReport(types.SensorGyro, s.cfg.ReportIntervalUS); err != nil {
		s.log.Warn().Err(err).Msg("gyro report rejected")
	}
	s.log.Info().Msg("sensor hub streaming")
}

// onSample runs synchronously inside hub.Service, on the control thread.
func (s *Service) onSample(sm *types.SensorSample) {
	if sm == nil {
		return
	}
	s.sample = *sm
	s.pending = &s.sample
}

// cycle is one pass of the service loop.
func (s *Service) cycle() {
	if s.sensorOK {
		s.hub.Service()
	}

	if s.pending != nil {
		cat := s.cls.Feed(s.pending)
		s.pending = nil
		if cat != types.CategoryNone {
			// Blocking playback: the transport is simply not serviced
			// while a voice plays.
			s.trig.Play(cat)
		}
	}

	if s.kick != nil && s.kick.Pressed() {
		s.log.Info().Msg("manual kick")
		s.trig.Play(types.CategoryKick)
	}
	if s.zero != nil && s.zero.Pressed() {
		s.log.Info().Msg("yaw offset reset")
		s.cls.SetYawOffset(0)
	}

	if s.con != nil {
		s.con.Service()
	}
}

// SensorEnabled reports whether the open handshake succeeded.
func (s *Service) SensorEnabled() bool { return s.sensorOK }
