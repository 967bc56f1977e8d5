package platform

// Package platform contains OS/platform integration and external tooling glue:
// locating the ffmpeg/ffprobe binaries, filesystem helpers, and handing files
// to the system player or file manager.
