package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/catview/catalog-browser/internal/config"
	"github.com/catview/catalog-browser/internal/model"
	"github.com/catview/catalog-browser/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	reader       store.Reader
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	factory       *ButtonFactory
	buttonSurface *fyne.Container
	productList   *widget.List
	products      []model.Product
	statusLabel   *widget.Label

	selectedCategory string
}

// NewRootUI creates and initializes the main UI. It reads all categories
// once to generate the selectable buttons; a failing read surfaces as the
// returned error.
func NewRootUI(window fyne.Window, app fyne.App, reader store.Reader, log zerolog.Logger) (*RootUI, error) {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		reader:       reader,
		settings:     settings,
		localization: localization,
		log:          log,
		factory:      NewButtonFactory(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	if err := ui.buildCategoryButtons(); err != nil {
		return nil, err
	}
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Owning surface for the generated buttons; absolute placement so the
	// factory's coordinate contract holds.
	ui.buttonSurface = container.NewWithoutLayout()
	ui.initFactory()

	// Product list for the selected category
	ui.productList = widget.NewList(
		func() int {
			return len(ui.products)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateProductItem(id, obj)
		},
	)
	ui.productList.OnSelected = func(id widget.ListItemID) {
		ui.showProductDetail(id)
	}

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeySelectCategory))

	categoriesHeader := widget.NewLabel(ui.localization.GetText(KeyCategories))
	categoriesHeader.TextStyle = fyne.TextStyle{Bold: true}
	productsHeader := widget.NewLabel(ui.localization.GetText(KeyProducts))
	productsHeader.TextStyle = fyne.TextStyle{Bold: true}

	buttonPane := container.NewBorder(categoriesHeader, nil, nil, nil, ui.buttonSurface)
	listPane := container.NewBorder(productsHeader, nil, nil, nil, ui.productList)

	split := container.NewHSplit(buttonPane, listPane)
	split.SetOffset(float64(ButtonPaneWidth / (ButtonPaneWidth + ListMinWidth)))

	content := container.NewBorder(
		nil,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		split,          // center
	)

	ui.window.SetContent(content)
}

// initFactory (re)initializes the button factory from current settings.
func (ui *RootUI) initFactory() {
	ui.factory.Init(FactoryConfig{
		Surface:    ui.buttonSurface,
		Top:        float32(ui.settings.GetButtonTop()),
		Spacing:    float32(ui.settings.GetButtonSpacing()),
		Left:       float32(ui.settings.GetButtonLeft()),
		Width:      float32(ui.settings.GetButtonWidth()),
		NamePrefix: DefaultButtonNamePrefix,
		OnTapped:   ui.onCategoryTapped,
	})
}

// buildCategoryButtons reads all categories and generates one button per
// row, in the order the store returned them.
func (ui *RootUI) buildCategoryButtons() error {
	categories, err := ui.reader.Categories(context.Background())
	if err != nil {
		return err
	}

	for _, c := range categories {
		ui.factory.CreateButton(c.Name, c.ID)
	}

	ui.log.Info().Int("categories", len(categories)).Msg("category buttons generated")
	return nil
}

// onCategoryTapped is the selection handler attached to every generated
// button: it moves the selection marker, re-queries the products for the
// tapped category, and replaces the product list wholesale.
func (ui *RootUI) onCategoryTapped(btn *CategoryButton) {
	ui.factory.Select(btn)
	ui.selectedCategory = btn.Text

	products, err := ui.reader.ProductsByCategory(context.Background(), btn.CategoryID)
	if err != nil {
		// Marker already moved; the product list intentionally stays stale.
		ui.log.Error().Err(err).Int64("category_id", btn.CategoryID).Msg("product query failed")
		return
	}

	ui.products = products
	ui.productList.UnselectAll()
	ui.productList.Refresh()
	ui.updateStatus()

	ui.log.Debug().
		Int64("category_id", btn.CategoryID).
		Int("products", len(products)).
		Msg("product list replaced")
}

// updateProductItem renders one product list entry.
func (ui *RootUI) updateProductItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok || id < 0 || id >= len(ui.products) {
		return
	}
	label.SetText(ui.products[id].GetDisplayName())
}

// showProductDetail presents the activated product's identifier and details
// in a modal dialog. Activation without a current entry is a no-op.
func (ui *RootUI) showProductDetail(id widget.ListItemID) {
	if id < 0 || id >= len(ui.products) {
		return
	}
	p := ui.products[id]

	detail := fmt.Sprintf("ID: %d\n%s\n%s: %s\n%s: %s",
		p.ID,
		p.GetDisplayName(),
		ui.localization.GetText(KeyPrice), p.GetPriceString(),
		ui.localization.GetText(KeyStock), p.GetStockString(),
	)
	dialog.ShowInformation(ui.localization.GetText(KeyProductDetails), detail, ui.window)
}

// updateStatus refreshes the bottom status line with the current selection.
func (ui *RootUI) updateStatus() {
	if ui.selectedCategory == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeySelectCategory))
		return
	}
	if len(ui.products) == 0 {
		ui.statusLabel.SetText(ui.selectedCategory + MiddleDotSeparator + ui.localization.GetText(KeyNoProducts))
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf("%s%s%d %s",
		ui.selectedCategory, MiddleDotSeparator, len(ui.products), ui.localization.GetText(KeyProducts)))
}

// rebuildButtons regenerates all category buttons with the current layout
// settings. Used after the settings dialog changes the layout knobs.
func (ui *RootUI) rebuildButtons() {
	ui.buttonSurface.RemoveAll()
	ui.initFactory()

	if err := ui.buildCategoryButtons(); err != nil {
		ui.log.Error().Err(err).Msg("category reload failed")
		return
	}

	ui.products = nil
	ui.selectedCategory = ""
	ui.productList.UnselectAll()
	ui.productList.Refresh()
	ui.updateStatus()
	ui.buttonSurface.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.rebuildButtons)
	sd.Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.updateStatus()
	ui.productList.Refresh()
}
