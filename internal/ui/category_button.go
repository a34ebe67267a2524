package ui

import (
	"fyne.io/fyne/v2/widget"
)

// CategoryButton is a button generated at runtime for one category row. It
// carries the category identifier it was built from and a single-selection
// visual marker toggled by the selection handler.
type CategoryButton struct {
	widget.Button

	// CategoryID is the identifier of the source category row.
	CategoryID int64

	name     string
	selected bool
}

// NewCategoryButton creates a button for one category. The handler receives
// the tapped button itself so the caller can identify the event source.
func NewCategoryButton(name, text string, categoryID int64, onTapped func(*CategoryButton)) *CategoryButton {
	cb := &CategoryButton{
		CategoryID: categoryID,
		name:       name,
	}
	cb.Text = text
	cb.Importance = widget.MediumImportance
	if onTapped != nil {
		cb.OnTapped = func() {
			onTapped(cb)
		}
	}
	cb.ExtendBaseWidget(cb)
	return cb
}

// Name returns the generated control name (prefix plus creation index).
func (cb *CategoryButton) Name() string {
	return cb.name
}

// Selected reports whether this button carries the selection marker.
func (cb *CategoryButton) Selected() bool {
	return cb.selected
}

// SetSelected toggles the selection marker and its visual state.
func (cb *CategoryButton) SetSelected(selected bool) {
	if cb.selected == selected {
		return
	}
	cb.selected = selected
	if selected {
		cb.Importance = widget.HighImportance
	} else {
		cb.Importance = widget.MediumImportance
	}
	cb.Refresh()
}
