package media

// Package media inspects media files with the external ffprobe/ffmpeg tools:
// container and stream metadata, duration, and preview frames for the
// playback surface. No media parsing happens in-process.
