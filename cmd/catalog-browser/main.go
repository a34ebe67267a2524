package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/catview/catalog-browser/internal/config"
	"github.com/catview/catalog-browser/internal/logger"
	"github.com/catview/catalog-browser/internal/store"
	"github.com/catview/catalog-browser/internal/ui"
)

func main() {
	log := logger.NewConsole(zerolog.InfoLevel)

	// Create new Fyne app
	myApp := app.NewWithID("com.catview.catalog-browser")
	myWindow := myApp.NewWindow("Catalog Browser")
	myWindow.Resize(fyne.NewSize(640, 480))

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
