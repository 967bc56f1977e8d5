package shell

import (
	"context"

	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/model"
)

// Dialogs are the user prompts the shell needs. Every blocking method returns
// ErrDialogCancelled when the user dismisses the dialog.
type Dialogs interface {
	// OpenFile asks for media files to load
	OpenFile(ctx context.Context) ([]string, error)

	// SaveFile asks where to write a conversion to format
	SaveFile(ctx context.Context, format model.Format, suggested string) (string, error)

	// Confirm asks a yes/no question
	Confirm(ctx context.Context, question Question) (bool, error)

	// Notify shows a message without waiting for the user
	Notify(notice Notice)
}

// Menu applies command enablement to the visible menu
type Menu interface {
	Apply(enablement model.Enablement)
}

// Playback shows the loaded file. An empty path clears the surface.
type Playback interface {
	Show(path string)
}

// ProgressPresenter displays a running job with a cancel affordance. The
// returned func dismisses the presentation.
type ProgressPresenter interface {
	Present(handle convert.Handle, format model.Format) (dismiss func())
}

// Revealer shows a file in the system file manager
type Revealer interface {
	Reveal(path string) error
}

// FileWatcher follows the loaded file on disk
type FileWatcher interface {
	Watch(path string) error
}
