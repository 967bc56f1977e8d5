package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/logging"
	"github.com/ytget/video-converter/internal/media"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
	"github.com/ytget/video-converter/internal/shell"
	"github.com/ytget/video-converter/internal/ui"
	"github.com/ytget/video-converter/internal/watch"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-converter"
	AppName = "Video Converter"
)

type launchOptions struct {
	ffmpegPath  string
	ffprobePath string
	logLevel    string
	language    string
	file        string
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts launchOptions

	rootCmd := &cobra.Command{
		Use:           "video-converter [file]",
		Short:         "Convert videos between avi, mp4 and webm with ffmpeg",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.ffmpegPath, "ffmpeg", "", "Path to the ffmpeg binary")
	rootCmd.Flags().StringVar(&opts.ffprobePath, "ffprobe", "", "Path to the ffprobe binary")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.language, "lang", "", "Interface language (system, en, ru, pt)")

	return rootCmd
}

func run(ctx context.Context, opts launchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logging.New(opts.logLevel)
	logger.Info("starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LogoResource)

	settings := config.NewSettings(myApp)
	if opts.language != "" {
		settings.SetLanguage(opts.language)
	}

	ffmpegPath, ffprobePath := locateTools(opts, settings, logger)
	profiles := loadProfiles(myApp, logger)

	inspector := media.NewInspector(ffmpegPath, ffprobePath, logger.Named("media"))
	converter := convert.NewService(convert.Options{
		FFmpegPath: ffmpegPath,
		Profiles:   profiles,
		Prober:     inspector,
		Logger:     logger.Named("convert"),
	})

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	rootUI := ui.NewRootUI(myApp, myWindow, settings, inspector, logger.Named("ui"))
	converter.SetUpdateCallback(rootUI.OnJobUpdate)

	var appShell *shell.Shell
	watcher, err := watch.New(logger.Named("watch"), func(path string) {
		appShell.Unload(path)
	})
	if err != nil {
		logger.Warn("loaded file will not be watched", "error", err)
	} else {
		defer watcher.Close()
	}

	shellOpts := shell.Options{
		Controller:         converter,
		Dialogs:            rootUI.Dialogs(),
		Menu:               rootUI,
		Playback:           rootUI.Player(),
		Progress:           rootUI.Progress(),
		Revealer:           rootUI.Player(),
		RevealAfterConvert: settings.GetRevealAfterConvert,
		Logger:             logger.Named("shell"),
	}
	if watcher != nil {
		shellOpts.Watcher = watcher
	}
	appShell = shell.New(shellOpts)
	rootUI.Bind(ctx, appShell)

	if opts.file != "" {
		if err := appShell.Load(opts.file); err != nil {
			logger.Warn("could not load startup file", "path", opts.file, "error", err)
		}
	}

	// Kill a running transcoder when the window goes away
	myWindow.SetOnClosed(cancel)

	// Show and run
	myWindow.ShowAndRun()

	if handle, ok := converter.Active(); ok {
		logger.Info("waiting for conversion to stop", "job_id", handle.ID())
		_ = handle.Cancel()
		<-handle.Done()
	}
	return nil
}

// locateTools resolves ffmpeg and ffprobe. An unresolved tool keeps its
// configured path or bare name so the failure surfaces as a spawn error when
// a conversion is attempted.
func locateTools(opts launchOptions, settings *config.Settings, logger hclog.Logger) (string, string) {
	resolve := func(tool, flag, setting string) string {
		path, err := platform.LocateTool(tool, flag, setting)
		if err != nil {
			logger.Warn("tool not found", "tool", tool, "error", err)
			for _, configured := range []string{flag, setting} {
				if configured != "" {
					return configured
				}
			}
			return platform.ToolFileName(tool)
		}
		logger.Debug("using tool", "tool", tool, "path", path)
		return path
	}

	return resolve(platform.FFmpegTool, opts.ffmpegPath, settings.GetFFmpegPath()),
		resolve(platform.FFprobeTool, opts.ffprobePath, settings.GetFFprobePath())
}

// loadProfiles reads the encoder profiles, honouring an override in the
// app's storage directory
func loadProfiles(a fyne.App, logger hclog.Logger) map[model.Format]model.Profile {
	var override string
	if root := a.Storage().RootURI(); root != nil {
		override = filepath.Join(root.Path(), config.ProfilesFileName)
	}

	profiles, err := config.LoadProfilesWithOverride(override)
	if err != nil {
		logger.Warn("ignoring invalid profile override", "path", override, "error", err)
	}
	return profiles
}
