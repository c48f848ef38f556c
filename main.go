package main

import (
	"Boardgame/audio"
	"Boardgame/config"
	"Boardgame/i18n"
	"Boardgame/ui"
	"context"
	"embed"
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
)

//go:embed assets/*
var content embed.FS

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Printf("Ignoring environment overrides. %v", err)
	}
	i18n.Setup(settings.Lang)
	if settings.Debug {
		log.Printf("Language: %s", i18n.GetLang())
	}

	toneCfg, err := audio.LoadConfig(content)
	if err != nil {
		log.Printf("Using default tone table. %v", err)
	}

	fyneApp := app.NewWithID("com.googsu.boardgame")
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(AppOptions{
		Clock:     clockwork.NewRealClock(),
		OpenTones: audio.SpeakerOpener(toneCfg),
		Debug:     settings.Debug,
	})

	w := ui.CreateMainWindow(a, fyneApp)

	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(func() {
		a.Shutdown()
		audio.ShutdownSpeaker()
		cancel()
	})

	go a.Run(ctx)

	w.ShowAndRun()
}
