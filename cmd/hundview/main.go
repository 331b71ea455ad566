package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/mzilenas/hundview/asset"
	"github.com/mzilenas/hundview/config"
	"github.com/mzilenas/hundview/ui"
	"github.com/mzilenas/hundview/util/log"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	a := app.NewWithID(config.AppID)
	application := ui.NewApplication(a, cfg, asset.NewManager(os.DirFS(cfg.ImageDir)))

	// The window is built on the UI goroutine once the event loop is running.
	a.Lifecycle().SetOnStarted(application.CreateAndShowMainFrame)

	log.Debugf("Starting %s %s", config.AppName, config.AppVersion)
	a.Run()
}
