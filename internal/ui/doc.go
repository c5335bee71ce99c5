package ui

// Package ui contains the Fyne-based desktop user interface. It collects the
// URL, mode, time range and formats, hands the built arguments to the
// download service and mirrors the job's progress in a status label and a
// busy indicator. All UI strings are localized via Localization.
