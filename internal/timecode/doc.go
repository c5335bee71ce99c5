package timecode

// Package timecode converts user-entered timestamps ("5", "3:40", "1:23:45")
// into normalized HH:MM:SS text and into a count of seconds.
