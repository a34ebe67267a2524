package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyCategories      = "categories"
	KeyProducts        = "products"
	KeyProductDetails  = "product_details"
	KeyNoProducts      = "no_products"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyDatabasePath    = "database_path"
	KeyButtonTop       = "button_top"
	KeyButtonSpacing   = "button_spacing"
	KeyButtonLeft      = "button_left"
	KeyButtonWidth     = "button_width"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
	KeyPrice           = "price"
	KeyStock           = "stock"
	KeySelectCategory  = "select_category"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Catalog Browser",
		KeyCategories:      "Categories",
		KeyProducts:        "Products",
		KeyProductDetails:  "Product Details",
		KeyNoProducts:      "No products in this category",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyDatabasePath:    "Catalog Database",
		KeyButtonTop:       "First Button Offset",
		KeyButtonSpacing:   "Button Spacing",
		KeyButtonLeft:      "Left Offset",
		KeyButtonWidth:     "Button Width",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "Database path changes take effect after restart.",
		KeyPrice:           "Price",
		KeyStock:           "Stock",
		KeySelectCategory:  "Select a category",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Каталог товаров",
		KeyCategories:      "Категории",
		KeyProducts:        "Товары",
		KeyProductDetails:  "Карточка товара",
		KeyNoProducts:      "В этой категории нет товаров",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyDatabasePath:    "База каталога",
		KeyButtonTop:       "Отступ первой кнопки",
		KeyButtonSpacing:   "Интервал кнопок",
		KeyButtonLeft:      "Отступ слева",
		KeyButtonWidth:     "Ширина кнопки",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyRestartRequired: "Смена базы данных вступит в силу после перезапуска.",
		KeyPrice:           "Цена",
		KeyStock:           "Остаток",
		KeySelectCategory:  "Выберите категорию",
	}
}
