package ui

// Package ui contains the Fyne-based desktop user interface for the catalog
// browser. It generates one button per category row, wires selection to the
// product list, and presents product details in a modal dialog. All UI
// strings are localized via Localization.
