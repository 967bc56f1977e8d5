package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/model"
)

func newTestRoot(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	return NewRootUI(app, app.NewWindow("test"), settings, nil, nil)
}

func TestRootUI_MenuStructure(t *testing.T) {
	ui := newTestRoot(t)

	menu := ui.window.MainMenu()
	if menu == nil || len(menu.Items) != 2 {
		t.Fatalf("Expected File and Language menus, got %+v", menu)
	}

	file := menu.Items[0]
	if file.Label != "File" {
		t.Errorf("First menu = %q, expected File", file.Label)
	}

	video := file.Items[0]
	if video.ChildMenu == nil {
		t.Fatal("Video item should open a submenu")
	}
	labels := []string{}
	for _, item := range video.ChildMenu.Items {
		labels = append(labels, item.Label)
	}
	expected := []string{"Load…", "", "Convert to avi…", "Convert to mp4…", "Convert to webm…"}
	if len(labels) != len(expected) {
		t.Fatalf("Video submenu = %q, expected %q", labels, expected)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("Video item %d = %q, expected %q", i, labels[i], expected[i])
		}
	}

	last := file.Items[len(file.Items)-1]
	if !last.IsQuit {
		t.Error("Last File item should be Quit")
	}
}

func TestRootUI_ConvertItemsStartDisabled(t *testing.T) {
	ui := newTestRoot(t)

	for _, format := range model.OutputFormats {
		if !ui.ConvertItem(format).Disabled {
			t.Errorf("Convert to %s should start disabled", format)
		}
	}
	if ui.loadItem.Disabled {
		t.Error("Load should always be enabled")
	}
}

func TestRootUI_Apply(t *testing.T) {
	ui := newTestRoot(t)

	ui.Apply(model.ComputeEnablement("/videos/movie.mp4", false))

	expected := map[model.Format]bool{
		model.FormatAVI:  false,
		model.FormatMP4:  true,
		model.FormatWebM: false,
	}
	for format, disabled := range expected {
		if ui.ConvertItem(format).Disabled != disabled {
			t.Errorf("Convert to %s disabled = %v, expected %v", format, !disabled, disabled)
		}
	}

	ui.Apply(model.Enablement{})
	for _, format := range model.OutputFormats {
		if !ui.ConvertItem(format).Disabled {
			t.Errorf("Convert to %s should be disabled while busy", format)
		}
	}
}

func TestRootUI_LanguageChangeKeepsEnablement(t *testing.T) {
	ui := newTestRoot(t)
	ui.Apply(model.ComputeEnablement("/videos/movie.webm", false))

	ui.onLanguageChange("ru")

	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("Language should be saved, got %s", ui.settings.GetLanguage())
	}
	if got := ui.window.MainMenu().Items[0].Label; got != "Файл" {
		t.Errorf("File menu should be relabelled, got %q", got)
	}
	if ui.ConvertItem(model.FormatAVI).Disabled || !ui.ConvertItem(model.FormatWebM).Disabled {
		t.Error("Rebuilt menu should keep the current enablement")
	}
}

func TestRootUI_ActionWithoutShell(t *testing.T) {
	ui := newTestRoot(t)

	// Must not panic before Bind
	ui.onLoad()
	ui.onConvert(model.FormatMP4)
}

func TestRootUI_OnJobUpdateShowsProgressInTitle(t *testing.T) {
	ui := newTestRoot(t)

	ui.OnJobUpdate(model.ConversionJob{Format: model.FormatWebM, Status: model.JobStatusRunning, Percent: 42})
	if got := ui.window.Title(); got != "Video Converter · webm 42%" {
		t.Errorf("Title while running = %q", got)
	}

	ui.OnJobUpdate(model.ConversionJob{Format: model.FormatWebM, Status: model.JobStatusCompleted, Percent: 100})
	if got := ui.window.Title(); got != "Video Converter" {
		t.Errorf("Title after completion = %q, expected plain app title", got)
	}
}
