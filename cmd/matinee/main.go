package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"matinee/assets/icon"
	"matinee/internal/app"
	"matinee/internal/config"
	"matinee/internal/engine"
	"matinee/internal/remote"
	"matinee/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.Warnf("Unknown log level %q, using info", cfg.Log.Level)
	}

	// Init fonts
	if err := ui.InitFonts(); err != nil {
		logrus.Fatalf("Failed to init fonts: %v", err)
	}

	// Start the playback engine
	eng, err := engine.NewMpv(cfg)
	if err != nil {
		ui.ErrorBox("Matinee", "The playback engine could not be started:\n"+err.Error())
		logrus.Fatalf("Failed to start playback engine: %v", err)
	}

	// Register on the session bus; the player works fine without it.
	mp, err := remote.Register(cfg.Playback.Volume)
	if err != nil {
		logrus.Warnf("Remote control disabled: %v", err)
	}

	game := app.New(cfg, eng, mp)
	eng.OnEnd = game.NotifyEnd

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Matinee")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil {
		logrus.Fatal(err)
	}
}
