package main

import (
	"context"
	"os"

	"airdrums-go/config"
	"airdrums-go/hal"
	"airdrums-go/logging"
	"airdrums-go/platform"
	"airdrums-go/services/console"
	"airdrums-go/services/drumkit"
	"airdrums-go/services/gesture"
	"airdrums-go/services/player"
	"airdrums-go/services/transport"
	"airdrums-go/session"
)

// The transport is the session layer's link contract.
var _ session.HAL = (*transport.Transport)(nil)

func main() {
	logging.ConfigureRuntime()
	log := logging.New("main")

	cfg := config.Default()
	if path := os.Getenv("AIRDRUMS_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("config load failed, using defaults")
		} else {
			cfg = loaded
		}
	}

	board, err := platform.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("board bring-up failed")
	}
	configurePins(board)

	link := transport.New(board.Engine, transport.Pins{
		CS:    board.CS,
		Ready: board.Ready,
		Reset: board.Reset,
		Wake:  board.Wake,
	}, board.Clock, board.Delay, transport.Config{
		HeaderBudgetMS:  cfg.Transport.HeaderBudgetMS,
		PayloadBudgetMS: cfg.Transport.PayloadBudgetMS,
		DrainBound:      cfg.Transport.DrainBound,
		Engine: hal.EngineConfig{
			Mode:      cfg.Transport.EngineMode,
			Frequency: cfg.Transport.EngineHz,
		},
	}, logging.New("transport"))

	cls := gesture.New(gesture.Config{
		HitThreshold: cfg.Gesture.HitThreshold,
		YawOffsetDeg: cfg.Gesture.YawOffsetDeg,
	}, logging.New("gesture"))

	trig := player.New(board.DAC, board.Delay, player.SynthBank(),
		player.Config{Calibration: cfg.Playback.Calibration}, logging.New("player"))

	con := console.New(board.Console, cls, trig, logging.New("console"))

	kick := drumkit.NewButton(board.KickButton, board.Clock, cfg.Buttons.DebounceMS)
	zero := drumkit.NewButton(board.ZeroButton, board.Clock, cfg.Buttons.DebounceMS)

	// The session protocol ships separately and drives the link through
	// session.HAL; until it is linked in, the hub stays closed and the
	// kit runs in manual-trigger mode.
	hub := session.Offline{}

	svc := drumkit.New(link, hub, cls, trig, kick, zero, con, board.Delay, drumkit.Config{
		ReportIntervalUS: cfg.Gesture.ReportIntervalUS,
	}, logging.New("drumkit"))

	log.Info().Msg("starting")
	svc.Run(context.Background())
}

func configurePins(b *platform.Board) {
	b.CS.ConfigureOutput(true)
	b.Reset.ConfigureOutput(true)
	b.Wake.ConfigureOutput(true)
	b.Ready.ConfigureInput(hal.PullUp)
	b.KickButton.ConfigureInput(hal.PullUp)
	b.ZeroButton.ConfigureInput(hal.PullUp)
}
