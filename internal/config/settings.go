package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/video-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFFmpegPath          = "ffmpeg_path"
	KeyFFprobePath         = "ffprobe_path"
	KeyLanguage            = "app_language"
	KeyLastOpenDir         = "last_open_directory"
	KeyLastSaveDir         = "last_save_directory"
	KeyRevealAfterConvert  = "reveal_after_convert"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultRevealAfterConvert = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFFmpegPath returns the configured ffmpeg binary, empty for automatic lookup
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg binary path
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, strings.TrimSpace(path))
}

// GetFFprobePath returns the configured ffprobe binary, empty for automatic lookup
func (s *Settings) GetFFprobePath() string {
	return s.app.Preferences().String(KeyFFprobePath)
}

// SetFFprobePath sets the ffprobe binary path
func (s *Settings) SetFFprobePath(path string) {
	s.app.Preferences().SetString(KeyFFprobePath, strings.TrimSpace(path))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastOpenDirectory returns where the open dialog starts
func (s *Settings) GetLastOpenDirectory() string {
	dir := s.app.Preferences().String(KeyLastOpenDir)
	if dir == "" {
		// Use system default Videos directory
		defaultDir, err := platform.GetHomeMediaDir()
		if err != nil {
			return ""
		}
		s.SetLastOpenDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLastOpenDirectory remembers the directory of the last loaded file
func (s *Settings) SetLastOpenDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastOpenDir, dir)
}

// GetLastSaveDirectory returns where the save dialog starts, empty to use the source directory
func (s *Settings) GetLastSaveDirectory() string {
	return s.app.Preferences().String(KeyLastSaveDir)
}

// SetLastSaveDirectory remembers the directory of the last conversion target
func (s *Settings) SetLastSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastSaveDir, dir)
}

// GetRevealAfterConvert returns whether to reveal converted files in the file manager
func (s *Settings) GetRevealAfterConvert() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterConvert, DefaultRevealAfterConvert)
}

// SetRevealAfterConvert sets whether to reveal converted files in the file manager
func (s *Settings) SetRevealAfterConvert(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterConvert, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
