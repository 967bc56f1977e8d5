package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/shell"
)

// ProgressPresenter shows a modal progress dialog for a running conversion
type ProgressPresenter struct {
	window       fyne.Window
	localization *Localization
	logger       hclog.Logger
}

var _ shell.ProgressPresenter = (*ProgressPresenter)(nil)

// NewProgressPresenter creates the presenter for window
func NewProgressPresenter(window fyne.Window, localization *Localization, logger hclog.Logger) *ProgressPresenter {
	return &ProgressPresenter{
		window:       window,
		localization: localization,
		logger:       logger,
	}
}

// ProgressView is the content of one progress dialog
type ProgressView struct {
	Bar       *widget.ProgressBar
	Detail    *widget.Label
	CancelBtn *widget.Button

	localization *Localization
}

// NewProgressView builds the dialog content. onCancel runs off the UI goroutine.
func NewProgressView(localization *Localization, onCancel func()) *ProgressView {
	v := &ProgressView{
		Bar:          widget.NewProgressBar(),
		Detail:       widget.NewLabel(localization.Format(KeyProgressDetail, 0)),
		localization: localization,
	}
	v.Bar.Max = ProgressMax

	v.CancelBtn = widget.NewButton(localization.GetText(KeyCancel), nil)
	v.CancelBtn.OnTapped = func() {
		// The dialog stays up until the process has really exited
		v.CancelBtn.SetText(localization.GetText(KeyCancelling))
		v.CancelBtn.Disable()
		go onCancel()
	}
	return v
}

// SetPercent shows the latest progress value
func (v *ProgressView) SetPercent(percent int) {
	v.Bar.SetValue(float64(percent))
	v.Detail.SetText(v.localization.Format(KeyProgressDetail, percent))
}

// SetCompleted shows the final state of a successful job
func (v *ProgressView) SetCompleted() {
	v.Bar.SetValue(ProgressMax)
	v.Detail.SetText(v.localization.GetText(KeyProgressDone))
	v.CancelBtn.Disable()
}

// Present shows the dialog and follows the handle until its progress
// stream closes
func (p *ProgressPresenter) Present(handle convert.Handle, format model.Format) func() {
	cancel := func() {
		if err := handle.Cancel(); err != nil && !errors.Is(err, convert.ErrJobFinished) {
			p.logger.Warn("cancel failed", "job_id", handle.ID(), "error", err)
		}
	}

	var view *ProgressView
	var dlg *dialog.CustomDialog
	fyne.DoAndWait(func() {
		view = NewProgressView(p.localization, cancel)
		content := container.NewVBox(
			widget.NewLabel(p.localization.GetText(KeyProgressBody)),
			view.Bar,
			view.Detail,
		)
		dlg = dialog.NewCustomWithoutButtons(p.localization.GetText(KeyProgressTitle), content, p.window)
		dlg.SetButtons([]fyne.CanvasObject{view.CancelBtn})
		dlg.Resize(fyne.NewSize(ProgressDialogWidth, dlg.MinSize().Height))
		dlg.Show()
	})

	p.logger.Debug("progress dialog shown", "job_id", handle.ID(), "format", format)

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for percent := range handle.Progress() {
			fyne.Do(func() { view.SetPercent(percent) })
		}
	}()

	return func() {
		<-drained
		if handle.Outcome().Completed() {
			fyne.DoAndWait(view.SetCompleted)
			time.Sleep(ProgressCompletedLinger)
		}
		fyne.DoAndWait(dlg.Hide)
	}
}
