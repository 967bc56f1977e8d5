package ui

import "testing"

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"en-US", "en"},
		{"ru_RU", "ru"},
		{"ru", "ru"},
		{"pt-BR", "pt"},
		{"pt_PT", "pt"},
		{"de-DE", "en"},
		{"", "en"},
		{"not a locale", "en"},
	}

	for _, tt := range tests {
		if got := MatchLanguage(tt.locale); got != tt.expected {
			t.Errorf("MatchLanguage(%q) = %q, expected %q", tt.locale, got, tt.expected)
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyFile) != "Файл" {
		t.Errorf("Unexpected ru text for file: %s", l.GetText(KeyFile))
	}

	// Unknown languages keep the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage(LanguageSystem)
	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language resolved to unsupported %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should fall back to itself, got %s", got)
	}

	delete(l.texts["pt"], KeyQuit)
	if got := l.GetText(KeyQuit); got != "Quit" {
		t.Errorf("Missing translation should fall back to English, got %s", got)
	}
}

func TestLocalization_CompleteTranslations(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		for code := range l.GetAvailableLanguages() {
			if _, ok := l.texts[code][key]; !ok {
				t.Errorf("Language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")

	if got := l.Format(KeyProgressDetail, 42); got != "42% completed" {
		t.Errorf("Format(progress) = %q", got)
	}
	if got := l.Format(KeyConvertTo, "webm"); got != "Convert to webm…" {
		t.Errorf("Format(convert) = %q", got)
	}
}
