package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/catview/catalog-browser/internal/config"
	"github.com/catview/catalog-browser/internal/logger"
	"github.com/catview/catalog-browser/internal/store"
	"github.com/catview/catalog-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.catview.catalog-browser"
	AppName = "Catalog Browser"

	WindowWidth  = 640
	WindowHeight = 480
)

func main() {
	log := logger.NewConsole(zerolog.InfoLevel).With().
		Str("run_id", uuid.NewString()).
		Logger()
	log.Info().Str("version", version).Msg("catalog browser starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Open the catalog database configured in preferences
	settings := config.NewSettings(myApp)
	catalog, err := store.Open(context.Background(), settings.GetDatabasePath(), log)
	if err != nil {
		log.Error().Err(err).Msg("failed to open catalog database")
		os.Exit(1)
	}
	defer catalog.Close()

	// Create and setup UI
	if _, err := ui.NewRootUI(myWindow, myApp, catalog, log); err != nil {
		log.Error().Err(err).Msg("failed to build category buttons")
		os.Exit(1)
	}

	// Show and run
	myWindow.ShowAndRun()
}
