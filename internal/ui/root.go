package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/shell"
)

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       hclog.Logger

	player   *Player
	dialogs  *Dialogs
	progress *ProgressPresenter

	ctx   context.Context
	shell *shell.Shell

	mu         sync.Mutex
	enablement model.Enablement
	activeJob  *model.ConversionJob

	mainMenu     *fyne.MainMenu
	loadItem     *fyne.MenuItem
	convertItems map[model.Format]*fyne.MenuItem
}

var _ shell.Menu = (*RootUI)(nil)

// NewRootUI creates the window content and menu. Call Bind before the
// window is shown so menu actions reach the shell.
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, inspector MediaInspector, logger hclog.Logger) *RootUI {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		ctx:          context.Background(),
	}

	ui.player = NewPlayer(inspector, localization, logger.Named("player"))
	ui.dialogs = NewDialogs(window, settings, localization, logger)
	ui.progress = NewProgressPresenter(window, localization, logger)

	// Set window title
	window.SetTitle(ui.title())

	ui.createMenu()
	window.SetContent(ui.player.Content())
	return ui
}

// Player returns the playback surface
func (ui *RootUI) Player() *Player { return ui.player }

// Dialogs returns the dialog collaborator
func (ui *RootUI) Dialogs() *Dialogs { return ui.dialogs }

// Progress returns the progress presenter
func (ui *RootUI) Progress() *ProgressPresenter { return ui.progress }

// Localization returns the active translations
func (ui *RootUI) Localization() *Localization { return ui.localization }

// Bind connects menu actions to s. Actions run with ctx and are cancelled
// with it.
func (ui *RootUI) Bind(ctx context.Context, s *shell.Shell) {
	ui.ctx = ctx
	ui.shell = s
}

// Apply sets the enabled state of the convert commands
func (ui *RootUI) Apply(enablement model.Enablement) {
	ui.mu.Lock()
	ui.enablement = enablement
	ui.mu.Unlock()

	fyne.Do(ui.applyEnablement)
}

// applyEnablement mirrors the stored enablement onto the menu items
func (ui *RootUI) applyEnablement() {
	ui.mu.Lock()
	enablement := ui.enablement
	ui.mu.Unlock()

	for format, item := range ui.convertItems {
		item.Disabled = !enablement.Enabled(format)
	}
	ui.mainMenu.Refresh()
}

// OnJobUpdate mirrors conversion progress into the window title
func (ui *RootUI) OnJobUpdate(job model.ConversionJob) {
	ui.mu.Lock()
	if job.Status.IsActive() {
		ui.activeJob = &job
	} else {
		ui.activeJob = nil
	}
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.window.SetTitle(ui.title())
	})
}

// title returns the window title, with the running job's progress appended
func (ui *RootUI) title() string {
	title := ui.localization.GetText(KeyAppTitle)

	ui.mu.Lock()
	defer ui.mu.Unlock()
	if ui.activeJob == nil {
		return title
	}
	return fmt.Sprintf("%s%s%s %d%%", title, MiddleDotSeparator, ui.activeJob.Format, ui.activeJob.Percent)
}

// ConvertItem returns the menu item for format
func (ui *RootUI) ConvertItem(format model.Format) *fyne.MenuItem {
	return ui.convertItems[format]
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	ui.loadItem = fyne.NewMenuItem(l.GetText(KeyLoad), ui.onLoad)

	videoItems := []*fyne.MenuItem{ui.loadItem, fyne.NewMenuItemSeparator()}
	ui.convertItems = make(map[model.Format]*fyne.MenuItem, len(model.OutputFormats))
	for _, format := range model.OutputFormats {
		item := fyne.NewMenuItem(l.Format(KeyConvertTo, format), func() {
			ui.onConvert(format)
		})
		item.Disabled = true
		ui.convertItems[format] = item
		videoItems = append(videoItems, item)
	}

	videoItem := fyne.NewMenuItem(l.GetText(KeyVideo), nil)
	videoItem.ChildMenu = fyne.NewMenu("", videoItems...)

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	quitItem := fyne.NewMenuItem(l.GetText(KeyQuit), ui.app.Quit)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		videoItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	current := ui.settings.GetLanguage()

	systemItem := fyne.NewMenuItem(l.GetText(KeySystemDefault), func() {
		ui.onLanguageChange(LanguageSystem)
	})
	systemItem.Checked = current == LanguageSystem
	languageMenu.Items = append(languageMenu.Items, systemItem, fyne.NewMenuItemSeparator())

	availableLanguages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})

		// Mark current language
		langItem.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.mainMenu = fyne.NewMainMenu(fileMenu, languageMenu)
	ui.window.SetMainMenu(ui.mainMenu)
	ui.applyEnablement()
}

// onLoad handles File › Video › Load
func (ui *RootUI) onLoad() {
	ui.runAction("load", func(ctx context.Context, s *shell.Shell) error {
		return s.OpenAndLoad(ctx)
	})
}

// onConvert handles File › Video › Convert to
func (ui *RootUI) onConvert(format model.Format) {
	ui.runAction("convert", func(ctx context.Context, s *shell.Shell) error {
		return s.Convert(ctx, format)
	})
}

// runAction runs a shell flow off the UI goroutine. The shell reports
// user-facing problems itself, so errors are only logged.
func (ui *RootUI) runAction(name string, fn func(context.Context, *shell.Shell) error) {
	if ui.shell == nil {
		ui.logger.Warn("menu action before shell is bound", "action", name)
		return
	}
	ctx, s := ui.ctx, ui.shell

	go func() {
		err := fn(ctx, s)
		switch {
		case err == nil:
		case errors.Is(err, shell.ErrBusy), errors.Is(err, context.Canceled):
			ui.logger.Debug("action skipped", "action", name, "error", err)
		default:
			ui.logger.Debug("action ended with error", "action", name, "error", err)
		}
	}()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Save to settings
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage()
}

// applyLanguage switches to the configured language and relabels everything
func (ui *RootUI) applyLanguage() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()

	// Recreate menu to update labels and checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.title())
	ui.player.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applyLanguage)
}
