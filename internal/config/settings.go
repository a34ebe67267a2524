package config

import (
	"fyne.io/fyne/v2"

	"github.com/catview/catalog-browser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDatabasePath  = "database_path"
	KeyButtonTop     = "button_top_offset"
	KeyButtonSpacing = "button_spacing"
	KeyButtonLeft    = "button_left_offset"
	KeyButtonWidth   = "button_width"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultButtonTop     = 16
	DefaultButtonSpacing = 40
	DefaultButtonLeft    = 16
	DefaultButtonWidth   = 160
	DefaultLanguage      = "en"
)

// Layout bounds; setters clamp into these ranges. MinButtonSpacing stays
// above the rendered button height so generated buttons never overlap.
const (
	MinButtonSpacing = 36
	MaxButtonSpacing = 120
	MinButtonWidth   = 80
	MaxButtonWidth   = 400
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDatabasePath returns the configured catalog database path
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		defaultPath, err := platform.DefaultDatabasePath()
		if err != nil {
			defaultPath = "catalog.db"
		}
		s.SetDatabasePath(defaultPath)
		return defaultPath
	}
	return path
}

// SetDatabasePath sets the catalog database path
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetButtonTop returns the vertical offset of the first generated button
func (s *Settings) GetButtonTop() int {
	value := s.app.Preferences().Int(KeyButtonTop)
	if value <= 0 {
		s.SetButtonTop(DefaultButtonTop)
		return DefaultButtonTop
	}
	return value
}

// SetButtonTop sets the vertical offset of the first generated button
func (s *Settings) SetButtonTop(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.app.Preferences().SetInt(KeyButtonTop, offset)
}

// GetButtonSpacing returns the vertical distance between generated buttons
func (s *Settings) GetButtonSpacing() int {
	value := s.app.Preferences().Int(KeyButtonSpacing)
	if value <= 0 {
		s.SetButtonSpacing(DefaultButtonSpacing)
		return DefaultButtonSpacing
	}
	return value
}

// SetButtonSpacing sets the vertical distance between generated buttons
func (s *Settings) SetButtonSpacing(spacing int) {
	if spacing < MinButtonSpacing {
		spacing = MinButtonSpacing
	}
	if spacing > MaxButtonSpacing {
		spacing = MaxButtonSpacing
	}
	s.app.Preferences().SetInt(KeyButtonSpacing, spacing)
}

// GetButtonLeft returns the horizontal offset of generated buttons
func (s *Settings) GetButtonLeft() int {
	value := s.app.Preferences().Int(KeyButtonLeft)
	if value <= 0 {
		s.SetButtonLeft(DefaultButtonLeft)
		return DefaultButtonLeft
	}
	return value
}

// SetButtonLeft sets the horizontal offset of generated buttons
func (s *Settings) SetButtonLeft(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.app.Preferences().SetInt(KeyButtonLeft, offset)
}

// GetButtonWidth returns the width of generated buttons
func (s *Settings) GetButtonWidth() int {
	value := s.app.Preferences().Int(KeyButtonWidth)
	if value <= 0 {
		s.SetButtonWidth(DefaultButtonWidth)
		return DefaultButtonWidth
	}
	return value
}

// SetButtonWidth sets the width of generated buttons
func (s *Settings) SetButtonWidth(width int) {
	if width < MinButtonWidth {
		width = MinButtonWidth
	}
	if width > MaxButtonWidth {
		width = MaxButtonWidth
	}
	s.app.Preferences().SetInt(KeyButtonWidth, width)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}
