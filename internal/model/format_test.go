package model

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"avi", FormatAVI, false},
		{"MP4", FormatMP4, false},
		{".webm", FormatWebM, false},
		{" webm ", FormatWebM, false},
		{"mkv", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseFormat(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, expected ErrUnknownFormat", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("ParseFormat(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/videos/movie.mp4", "mp4"},
		{"/videos/MOVIE.WebM", "webm"},
		{"clip.tar.avi", "avi"},
		{"/no/extension", ""},
	}

	for _, test := range tests {
		if result := ExtensionOf(test.path); result != test.expected {
			t.Errorf("ExtensionOf(%s) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestIsSupportedInput(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"movie.mkv", true},
		{"movie.AVCHD", true},
		{"movie.swf", true},
		{"movie.txt", false},
		{"movie", false},
	}

	for _, test := range tests {
		if result := IsSupportedInput(test.path); result != test.expected {
			t.Errorf("IsSupportedInput(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestIsPreviewable(t *testing.T) {
	if IsPreviewable("movie.avi") {
		t.Error("avi should not be previewable")
	}
	if !IsPreviewable("movie.mp4") {
		t.Error("mp4 should be previewable")
	}
	if !IsPreviewable("movie.WEBM") {
		t.Error("extension match should be case-insensitive")
	}
}

func TestWithFormat(t *testing.T) {
	tests := []struct {
		path     string
		format   Format
		expected string
	}{
		{"/videos/movie.mp4", FormatWebM, "/videos/movie.webm"},
		{"/videos/movie.tar.mkv", FormatAVI, "/videos/movie.tar.avi"},
		{"/videos/movie", FormatMP4, "/videos/movie.mp4"},
	}

	for _, test := range tests {
		if result := WithFormat(test.path, test.format); result != test.expected {
			t.Errorf("WithFormat(%s, %s) = %s, expected %s", test.path, test.format, result, test.expected)
		}
	}
}
