package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestToolPaths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Unset means automatic lookup
	if settings.GetFFmpegPath() != "" {
		t.Errorf("Expected empty ffmpeg path, got %s", settings.GetFFmpegPath())
	}
	if settings.GetFFprobePath() != "" {
		t.Errorf("Expected empty ffprobe path, got %s", settings.GetFFprobePath())
	}

	settings.SetFFmpegPath("  /opt/ffmpeg/bin/ffmpeg ")
	if got := settings.GetFFmpegPath(); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected trimmed ffmpeg path, got %q", got)
	}

	settings.SetFFprobePath("/opt/ffmpeg/bin/ffprobe")
	if got := settings.GetFFprobePath(); got != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("Expected ffprobe path, got %q", got)
	}
}

func TestLastDirectories(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default open directory falls back to the user's media folder
	if dir := settings.GetLastOpenDirectory(); dir == "" {
		t.Error("Open directory should not be empty")
	}

	settings.SetLastOpenDirectory("/videos/in")
	if got := settings.GetLastOpenDirectory(); got != "/videos/in" {
		t.Errorf("Expected open directory /videos/in, got %s", got)
	}

	if got := settings.GetLastSaveDirectory(); got != "" {
		t.Errorf("Expected empty save directory by default, got %s", got)
	}
	settings.SetLastSaveDirectory("/videos/out")
	if got := settings.GetLastSaveDirectory(); got != "/videos/out" {
		t.Errorf("Expected save directory /videos/out, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}

	settings.SetLanguage("")
	if settings.GetLanguage() != DefaultLanguage {
		t.Error("Empty language should reset to the default")
	}
}

func TestRevealAfterConvert(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealAfterConvert() != DefaultRevealAfterConvert {
		t.Errorf("Expected default %v", DefaultRevealAfterConvert)
	}

	settings.SetRevealAfterConvert(true)
	if !settings.GetRevealAfterConvert() {
		t.Error("Expected reveal after convert to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
