package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// FactoryConfig holds the layout configuration the button factory applies to
// every generated button. Surface is the owning container; generated buttons
// are placed at absolute coordinates inside it.
type FactoryConfig struct {
	Surface    *fyne.Container
	Top        float32
	Spacing    float32
	Left       float32
	Width      float32
	NamePrefix string
	OnTapped   func(*CategoryButton)
}

// ButtonFactory creates category buttons at incrementing vertical offsets
// and keeps the ordered list of everything it created. Init must be called
// before the first CreateButton.
type ButtonFactory struct {
	cfg         FactoryConfig
	buttons     []*CategoryButton
	counter     int
	nextTop     float32
	initialized bool
}

// NewButtonFactory returns an uninitialized factory.
func NewButtonFactory() *ButtonFactory {
	return &ButtonFactory{}
}

// Init sets the layout configuration and resets the created-buttons list and
// the creation counter, regardless of prior state.
func (f *ButtonFactory) Init(cfg FactoryConfig) {
	if cfg.NamePrefix == "" {
		cfg.NamePrefix = DefaultButtonNamePrefix
	}
	f.cfg = cfg
	f.buttons = nil
	f.counter = 0
	f.nextTop = cfg.Top
	f.initialized = true
}

// CreateButton builds one button for the given category, places it at the
// next vertical offset on the owning surface, and registers it in the
// created-buttons list. Calling it before Init is a programming error.
func (f *ButtonFactory) CreateButton(displayText string, categoryID int64) {
	if !f.initialized {
		panic("ui: ButtonFactory.CreateButton called before Init")
	}

	name := fmt.Sprintf("%s%d", f.cfg.NamePrefix, f.counter)
	btn := NewCategoryButton(name, displayText, categoryID, f.cfg.OnTapped)
	btn.Resize(fyne.NewSize(f.cfg.Width, ButtonHeight))
	btn.Move(fyne.NewPos(f.cfg.Left, f.nextTop))

	f.buttons = append(f.buttons, btn)
	if f.cfg.Surface != nil {
		f.cfg.Surface.Add(btn)
	}

	f.nextTop += f.cfg.Spacing
	f.counter++
}

// Buttons returns the created buttons in creation order.
func (f *ButtonFactory) Buttons() []*CategoryButton {
	return f.buttons
}

// ClearSelection removes the selection marker from every created button.
func (f *ButtonFactory) ClearSelection() {
	for _, btn := range f.buttons {
		btn.SetSelected(false)
	}
}

// Select clears every marker and then marks the given button, keeping the
// exactly-one-selected invariant.
func (f *ButtonFactory) Select(target *CategoryButton) {
	f.ClearSelection()
	if target != nil {
		target.SetSelected(true)
	}
}

// SelectedButton returns the currently marked button, or nil when none was
// activated yet.
func (f *ButtonFactory) SelectedButton() *CategoryButton {
	for _, btn := range f.buttons {
		if btn.Selected() {
			return btn
		}
	}
	return nil
}
