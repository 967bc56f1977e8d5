package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/model"
)

// Options wires a Shell to its collaborators. Revealer, Watcher and
// RevealAfterConvert are optional.
type Options struct {
	Controller convert.Controller
	Dialogs    Dialogs
	Menu       Menu
	Playback   Playback
	Progress   ProgressPresenter
	Revealer   Revealer
	Watcher    FileWatcher

	RevealAfterConvert func() bool
	Logger             hclog.Logger
}

// Shell is the single owner of the loaded file and the convert command state
type Shell struct {
	controller convert.Controller
	dialogs    Dialogs
	menu       Menu
	playback   Playback
	progress   ProgressPresenter
	revealer   Revealer
	watcher    FileWatcher
	revealOpt  func() bool
	logger     hclog.Logger

	mu     sync.Mutex
	loaded string
	busy   bool
}

// New creates a shell with nothing loaded and every convert command disabled
func New(opts Options) *Shell {
	s := &Shell{
		controller: opts.Controller,
		dialogs:    opts.Dialogs,
		menu:       opts.Menu,
		playback:   opts.Playback,
		progress:   opts.Progress,
		revealer:   opts.Revealer,
		watcher:    opts.Watcher,
		revealOpt:  opts.RevealAfterConvert,
		logger:     opts.Logger,
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	s.menu.Apply(model.Enablement{})
	return s
}

// LoadedFile returns the current file, empty when nothing is loaded
func (s *Shell) LoadedFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Busy reports whether a convert command is in progress
func (s *Shell) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Enablement returns the convert command state derived from the loaded file
func (s *Shell) Enablement() model.Enablement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ComputeEnablement(s.loaded, s.busy)
}

// OpenAndLoad asks the user for a file and loads it. Dismissing the dialog
// is not an error.
func (s *Shell) OpenAndLoad(ctx context.Context) error {
	if s.Busy() {
		return ErrBusy
	}

	paths, err := s.dialogs.OpenFile(ctx)
	if errors.Is(err, ErrDialogCancelled) || (err == nil && len(paths) == 0) {
		s.logger.Debug("open dialog dismissed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open dialog failed: %w", err)
	}

	return s.Load(paths...)
}

// Load makes path the loaded file. Exactly one path is accepted.
func (s *Shell) Load(paths ...string) error {
	switch {
	case len(paths) == 0:
		return ErrDialogCancelled
	case len(paths) > 1:
		s.logger.Warn("rejected multiple selection", "count", len(paths))
		s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeMultipleSelection})
		return ErrMultipleSelection
	}
	path := paths[0]

	if !model.IsSupportedInput(path) {
		s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeUnsupportedInput, Path: path})
		return fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}

	// The watcher reports absolute paths, so the loaded file is kept absolute
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	// Commands stay disabled while the file is being taken over
	s.menu.Apply(model.Enablement{})

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = fmt.Errorf("%s is a directory", path)
	}
	if err != nil {
		s.release()
		s.dialogs.Notify(Notice{Kind: NoticeError, Code: NoticeFileGone, Path: path, Detail: err.Error()})
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	if s.watcher != nil {
		if err := s.watcher.Watch(path); err != nil {
			s.logger.Warn("cannot watch loaded file", "path", path, "error", err)
		}
	}

	s.mu.Lock()
	s.loaded = path
	s.mu.Unlock()
	s.release()

	s.logger.Info("video loaded", "path", path)
	s.playback.Show(path)

	if !model.IsPreviewable(path) {
		s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeUnsupportedPlayback, Path: path})
	}
	return nil
}

// Unload clears the loaded file if it is still path and no conversion is
// running. It is used when the file disappears from disk.
func (s *Shell) Unload(path string) {
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	s.mu.Lock()
	if s.loaded == "" || s.loaded != path || s.busy {
		s.mu.Unlock()
		return
	}
	s.loaded = ""
	s.mu.Unlock()

	s.logger.Info("loaded video removed from disk", "path", path)
	if s.watcher != nil {
		if err := s.watcher.Watch(""); err != nil {
			s.logger.Debug("failed to stop watching", "error", err)
		}
	}

	s.menu.Apply(model.Enablement{})
	s.playback.Show("")
	s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeFileGone, Path: path})
}

// Convert runs one conversion of the loaded file to format: save dialog,
// transcoder job with progress, then the outcome report. It blocks until the
// job has finished and must not be called on the UI goroutine.
func (s *Shell) Convert(ctx context.Context, format model.Format) error {
	s.mu.Lock()
	source := s.loaded
	switch {
	case source == "":
		s.mu.Unlock()
		return ErrNoFile
	case s.busy:
		s.mu.Unlock()
		return ErrBusy
	case !model.ComputeEnablement(source, false).Enabled(format):
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCommandDisabled, format)
	}
	s.busy = true
	s.mu.Unlock()

	s.menu.Apply(model.Enablement{})

	target, err := s.dialogs.SaveFile(ctx, format, model.WithFormat(source, format))
	if errors.Is(err, ErrDialogCancelled) {
		s.logger.Debug("save dialog dismissed", "format", format)
		s.release()
		return nil
	}
	if err != nil {
		s.release()
		return fmt.Errorf("save dialog failed: %w", err)
	}
	if !model.HasFormat(target, format) {
		target += format.Extension()

		// The dialog only confirmed overwriting the name it returned
		if _, err := os.Stat(target); err == nil {
			replace, err := s.dialogs.Confirm(ctx, Question{Code: QuestionOverwrite, Path: target, Format: format})
			if err != nil || !replace {
				s.logger.Debug("kept existing file", "target", target)
				s.release()
				return nil
			}
		}
	}

	handle, err := s.controller.Start(source, format, target)
	if err != nil {
		s.release()
		s.reportStartError(err, format, target)
		return err
	}

	dismiss := s.progress.Present(handle, format)

	select {
	case <-handle.Done():
	case <-ctx.Done():
		s.logger.Info("cancelling conversion on shutdown", "job_id", handle.ID())
		if err := handle.Cancel(); err != nil && !errors.Is(err, convert.ErrJobFinished) {
			s.logger.Warn("cancel failed", "job_id", handle.ID(), "error", err)
		}
		<-handle.Done()
	}

	dismiss()
	s.release()

	outcome := handle.Outcome()
	switch outcome.Status {
	case model.JobStatusCompleted:
		s.onCompleted(ctx, format, target)
	case model.JobStatusCancelled:
		s.dialogs.Notify(Notice{Kind: NoticeInfo, Code: NoticeConversionCancelled, Format: format, Path: target})
	default:
		s.dialogs.Notify(Notice{
			Kind:   NoticeWarning,
			Code:   NoticeConversionFailed,
			Format: format,
			Path:   target,
			Detail: failureDetail(outcome.Err),
		})
	}
	return outcome.Err
}

func (s *Shell) onCompleted(ctx context.Context, format model.Format, target string) {
	if s.revealer != nil && s.revealOpt != nil && s.revealOpt() {
		if err := s.revealer.Reveal(target); err != nil {
			s.logger.Warn("failed to reveal converted file", "target", target, "error", err)
			s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeRevealFailed, Path: target, Detail: err.Error()})
		}
	}

	load, err := s.dialogs.Confirm(ctx, Question{Code: QuestionLoadConverted, Path: target, Format: format})
	if err != nil || !load {
		return
	}
	if err := s.Load(target); err != nil {
		s.logger.Warn("failed to load converted file", "target", target, "error", err)
	}
}

func (s *Shell) reportStartError(err error, format model.Format, target string) {
	var spawnErr *convert.SpawnError
	if errors.As(err, &spawnErr) {
		s.logger.Error("transcoder could not be started", "tool", spawnErr.Tool, "error", spawnErr.Err)
		s.dialogs.Notify(Notice{Kind: NoticeError, Code: NoticeSpawnFailed, Format: format, Detail: err.Error()})
		return
	}
	s.logger.Warn("conversion not started", "format", format, "target", target, "error", err)
	s.dialogs.Notify(Notice{Kind: NoticeWarning, Code: NoticeStartFailed, Format: format, Path: target, Detail: err.Error()})
}

// release ends a busy section and re-applies file-derived enablement
func (s *Shell) release() {
	s.mu.Lock()
	s.busy = false
	enablement := model.ComputeEnablement(s.loaded, false)
	s.mu.Unlock()

	s.menu.Apply(enablement)
}

func failureDetail(err error) string {
	var transcodeErr *convert.TranscodeError
	if errors.As(err, &transcodeErr) && transcodeErr.Detail != "" {
		return transcodeErr.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
