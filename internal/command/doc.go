package command

// Package command turns a download request into the argument list passed to
// yt-dlp. Building is pure: no I/O and no shared state.
