package model

// Package model defines domain data structures used across the app: download
// requests, the single in-flight download job, preview metadata, status enums
// and the error taxonomy surfaced to the user.
