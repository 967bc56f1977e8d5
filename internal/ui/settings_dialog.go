package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ffmpegEntry    *widget.Entry
	ffprobeEntry   *widget.Entry
	languageSelect *widget.Select
	revealCheck    *widget.Check

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Tool paths; empty means bundled or PATH lookup
	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder(l.GetText(KeyAutomaticLookup))
	sd.ffprobeEntry = widget.NewEntry()
	sd.ffprobeEntry.SetPlaceHolder(l.GetText(KeyAutomaticLookup))

	ffmpegRow := container.NewBorder(nil, nil, nil, widget.NewButton(l.GetText(KeyBrowse), func() {
		sd.onBrowseTool(sd.ffmpegEntry)
	}), sd.ffmpegEntry)
	ffprobeRow := container.NewBorder(nil, nil, nil, widget.NewButton(l.GetText(KeyBrowse), func() {
		sd.onBrowseTool(sd.ffprobeEntry)
	}), sd.ffprobeEntry)

	// Language selection by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		if code == LanguageSystem {
			name = l.GetText(KeySystemDefault)
		}
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealAfterConvert), nil)

	hint := widget.NewLabel(l.GetText(KeyToolsRestartHint))
	hint.Importance = widget.LowImportance

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyFFmpegPath), ffmpegRow),
		widget.NewFormItem(l.GetText(KeyFFprobePath), ffprobeRow),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(form, hint, widget.NewSeparator(), sd.revealCheck)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.ffprobeEntry.SetText(sd.settings.GetFFprobePath())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterConvert())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseTool picks a binary for entry
func (sd *SettingsDialog) onBrowseTool(entry *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		entry.SetText(reader.URI().Path())
		reader.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetFFprobePath(sd.ffprobeEntry.Text)
	sd.settings.SetRevealAfterConvert(sd.revealCheck.Checked)

	// Save language
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
