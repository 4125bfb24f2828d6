// Package ui contains the Fyne-based desktop dashboard. It shows one card per
// configured widget, opens the widget editor and the settings dialog, and
// redraws whenever the widget store notifies. All UI strings are localized via
// Localization.
package ui
