package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/shell"
)

// Dialogs shows Fyne dialogs on behalf of the shell. Blocking methods must be
// called off the UI goroutine; they hand the dialog to fyne.Do and wait for
// the user's answer.
type Dialogs struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       hclog.Logger
}

var _ shell.Dialogs = (*Dialogs)(nil)

// NewDialogs creates the dialog collaborator for window
func NewDialogs(window fyne.Window, settings *config.Settings, localization *Localization, logger hclog.Logger) *Dialogs {
	return &Dialogs{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}
}

type pathResult struct {
	path string
	err  error
}

// OpenFile shows a single-selection open dialog filtered to media files
func (d *Dialogs) OpenFile(ctx context.Context) ([]string, error) {
	result := make(chan pathResult, 1)

	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				result <- pathResult{err: err}
				return
			}
			if reader == nil {
				result <- pathResult{err: shell.ErrDialogCancelled}
				return
			}
			path := reader.URI().Path()
			reader.Close()
			result <- pathResult{path: path}
		}, d.window)

		fd.SetFilter(storage.NewExtensionFileFilter(dottedExtensions(model.InputExtensions...)))
		if location := listableDir(d.settings.GetLastOpenDirectory()); location != nil {
			fd.SetLocation(location)
		}
		fd.Show()
	})

	res, err := wait(ctx, result)
	if err != nil {
		return nil, err
	}
	if res.err != nil {
		return nil, res.err
	}

	d.settings.SetLastOpenDirectory(filepath.Dir(res.path))
	return []string{res.path}, nil
}

// SaveFile shows a save dialog for a conversion to format
func (d *Dialogs) SaveFile(ctx context.Context, format model.Format, suggested string) (string, error) {
	result := make(chan pathResult, 1)

	fyne.Do(func() {
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				result <- pathResult{err: err}
				return
			}
			if writer == nil {
				result <- pathResult{err: shell.ErrDialogCancelled}
				return
			}
			path := writer.URI().Path()
			writer.Close()
			removeEmptyFile(path)
			result <- pathResult{path: path}
		}, d.window)

		fd.SetFilter(storage.NewExtensionFileFilter(dottedExtensions(string(format))))
		fd.SetFileName(filepath.Base(suggested))

		dir := d.settings.GetLastSaveDirectory()
		if dir == "" {
			dir = filepath.Dir(suggested)
		}
		if location := listableDir(dir); location != nil {
			fd.SetLocation(location)
		}
		fd.Show()
	})

	res, err := wait(ctx, result)
	if err != nil {
		return "", err
	}
	if res.err != nil {
		return "", res.err
	}

	d.settings.SetLastSaveDirectory(filepath.Dir(res.path))
	return res.path, nil
}

// Confirm asks a localized yes/no question
func (d *Dialogs) Confirm(ctx context.Context, question shell.Question) (bool, error) {
	title, message := d.questionText(question)
	result := make(chan bool, 1)

	fyne.Do(func() {
		cd := dialog.NewConfirm(title, message, func(ok bool) {
			result <- ok
		}, d.window)
		cd.SetConfirmText(d.localization.GetText(KeyYes))
		cd.SetDismissText(d.localization.GetText(KeyNo))
		cd.Show()
	})

	return wait(ctx, result)
}

// Notify shows a notice without blocking the caller
func (d *Dialogs) Notify(notice shell.Notice) {
	title, message := d.NoticeText(notice)

	fyne.Do(func() {
		if notice.Kind == shell.NoticeError {
			dialog.ShowError(errors.New(message), d.window)
			return
		}
		dialog.ShowInformation(title, message, d.window)
	})
}

// NoticeText returns the localized title and message for notice
func (d *Dialogs) NoticeText(notice shell.Notice) (string, string) {
	l := d.localization

	var title string
	switch notice.Kind {
	case shell.NoticeError:
		title = l.GetText(KeyError)
	case shell.NoticeWarning:
		title = l.GetText(KeyWarning)
	default:
		title = l.GetText(KeyInformation)
	}

	name := filepath.Base(notice.Path)
	switch notice.Code {
	case shell.NoticeUnsupportedPlayback:
		return title, l.Format(KeyNoticeUnsupportedPlayback, model.ExtensionOf(notice.Path))
	case shell.NoticeUnsupportedInput:
		return title, l.Format(KeyNoticeUnsupportedInput, name)
	case shell.NoticeMultipleSelection:
		return title, l.GetText(KeyNoticeMultipleSelection)
	case shell.NoticeSpawnFailed:
		return title, l.Format(KeyNoticeSpawnFailed, notice.Detail)
	case shell.NoticeStartFailed:
		return title, l.Format(KeyNoticeStartFailed, notice.Detail)
	case shell.NoticeConversionFailed:
		return title, l.Format(KeyNoticeConversionFailed, notice.Format, notice.Detail)
	case shell.NoticeConversionCancelled:
		return title, l.Format(KeyNoticeConversionCancelled, notice.Format)
	case shell.NoticeFileGone:
		return title, l.Format(KeyNoticeFileGone, name)
	case shell.NoticeRevealFailed:
		return title, l.Format(KeyNoticeRevealFailed, name, notice.Detail)
	default:
		d.logger.Warn("notice without text", "code", notice.Code)
		return title, notice.Detail
	}
}

func (d *Dialogs) questionText(question shell.Question) (string, string) {
	switch question.Code {
	case shell.QuestionLoadConverted:
		return d.localization.GetText(KeyLoadConvertedTitle),
			d.localization.Format(KeyLoadConvertedMessage, question.Format)
	case shell.QuestionOverwrite:
		return d.localization.GetText(KeyOverwriteTitle),
			d.localization.Format(KeyOverwriteMessage, filepath.Base(question.Path))
	default:
		return d.localization.GetText(KeyAppTitle), string(question.Code)
	}
}

// wait blocks until the dialog answers or ctx ends
func wait[T any](ctx context.Context, result chan T) (T, error) {
	select {
	case v := <-result:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func dottedExtensions(exts ...string) []string {
	dotted := make([]string, 0, len(exts))
	for _, ext := range exts {
		dotted = append(dotted, "."+ext)
	}
	return dotted
}

func listableDir(dir string) fyne.ListableURI {
	if dir == "" {
		return nil
	}
	location, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return location
}

// removeEmptyFile drops the placeholder the save dialog creates so a
// conversion that never starts leaves nothing behind
func removeEmptyFile(path string) {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() == 0 {
		_ = os.Remove(path)
	}
}
