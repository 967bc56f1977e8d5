package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output container format the converter can produce
type Format string

const (
	FormatAVI  Format = "avi"
	FormatMP4  Format = "mp4"
	FormatWebM Format = "webm"
)

// ErrUnknownFormat is returned when a string does not name an output format
var ErrUnknownFormat = errors.New("unknown output format")

// OutputFormats lists the convert targets in menu order
var OutputFormats = []Format{FormatAVI, FormatMP4, FormatWebM}

// InputExtensions is the media filter used by the file selection dialog
var InputExtensions = []string{"mkv", "avi", "mp4", "mov", "wmv", "flv", "f4v", "swf", "webm", "avchd"}

// PreviewExtensions are the extensions the playback surface can preview in-app
var PreviewExtensions = []string{"mp4", "webm", "mov", "mkv"}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat converts a user or config supplied name into a Format
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, f := range OutputFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ExtensionOf returns the lower-cased extension of path without the dot
func ExtensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// HasFormat reports whether path already carries the extension of f
func HasFormat(path string, f Format) bool {
	return ExtensionOf(path) == string(f)
}

// IsSupportedInput reports whether path has one of the selectable media extensions
func IsSupportedInput(path string) bool {
	return containsExt(InputExtensions, ExtensionOf(path))
}

// IsPreviewable reports whether the playback surface can show path in-app
func IsPreviewable(path string) bool {
	return containsExt(PreviewExtensions, ExtensionOf(path))
}

// WithFormat replaces the extension of path with the one for f
func WithFormat(path string, f Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Extension()
}

func containsExt(list []string, ext string) bool {
	if ext == "" {
		return false
	}
	for _, e := range list {
		if e == ext {
			return true
		}
	}
	return false
}
