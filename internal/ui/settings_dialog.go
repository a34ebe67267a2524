package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/catview/catalog-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	databasePathEntry *widget.Entry
	buttonTopEntry    *widget.Entry
	spacingEntry      *widget.Entry
	leftEntry         *widget.Entry
	widthEntry        *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save so the caller can regenerate the category buttons.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Database path selection
	sd.databasePathEntry = widget.NewEntry()
	sd.databasePathEntry.SetPlaceHolder("catalog.db")

	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDatabase)
	databaseRow := container.NewBorder(nil, nil, nil, browseBtn, sd.databasePathEntry)

	// Button layout knobs
	sd.buttonTopEntry = widget.NewEntry()
	sd.spacingEntry = widget.NewEntry()
	sd.spacingEntry.SetPlaceHolder(strconv.Itoa(config.DefaultButtonSpacing))
	sd.leftEntry = widget.NewEntry()
	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultButtonWidth))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDatabasePath)),
		databaseRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyButtonTop)),
		sd.buttonTopEntry,

		widget.NewLabel(sd.localization.GetText(KeyButtonSpacing)),
		sd.spacingEntry,

		widget.NewLabel(sd.localization.GetText(KeyButtonLeft)),
		sd.leftEntry,

		widget.NewLabel(sd.localization.GetText(KeyButtonWidth)),
		sd.widthEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.databasePathEntry.SetText(sd.settings.GetDatabasePath())
	sd.buttonTopEntry.SetText(strconv.Itoa(sd.settings.GetButtonTop()))
	sd.spacingEntry.SetText(strconv.Itoa(sd.settings.GetButtonSpacing()))
	sd.leftEntry.SetText(strconv.Itoa(sd.settings.GetButtonLeft()))
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetButtonWidth()))
}

// onBrowseDatabase handles database file browsing
func (sd *SettingsDialog) onBrowseDatabase() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.databasePathEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save database path; applies on next start
	databaseChanged := false
	path := sd.databasePathEntry.Text
	if path != "" && path != sd.settings.GetDatabasePath() {
		sd.settings.SetDatabasePath(path)
		databaseChanged = true
	}

	// Validate and save layout knobs; setters clamp out-of-range values
	if v, err := strconv.Atoi(sd.buttonTopEntry.Text); err == nil {
		sd.settings.SetButtonTop(v)
	}
	if v, err := strconv.Atoi(sd.spacingEntry.Text); err == nil {
		sd.settings.SetButtonSpacing(v)
	}
	if v, err := strconv.Atoi(sd.leftEntry.Text); err == nil {
		sd.settings.SetButtonLeft(v)
	}
	if v, err := strconv.Atoi(sd.widthEntry.Text); err == nil {
		sd.settings.SetButtonWidth(v)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if databaseChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
