package platform

// Package platform contains OS/platform integration and external tooling glue:
// URL preview via yt-dlp metadata and playlist listing, filesystem helpers,
// free space checks and OS reveal.
