package convert

import (
	"context"
	"time"

	"github.com/ytget/video-converter/internal/model"
)

// Controller defines the interface for the conversion service.
type Controller interface {
	SetUpdateCallback(func(model.ConversionJob))
	Start(sourcePath string, format model.Format, targetPath string) (Handle, error)
	Active() (Handle, bool)
}

// Handle observes and controls one running conversion.
type Handle interface {
	ID() string
	Snapshot() model.ConversionJob

	// Progress delivers percentages in [0,100]. Only the latest undelivered
	// value is kept. The channel is closed once the job is finished.
	Progress() <-chan int

	// Done is closed after the terminal outcome is recorded
	Done() <-chan struct{}

	// Outcome returns the terminal result; valid once Done is closed
	Outcome() Outcome

	// Cancel requests termination of the transcoder process
	Cancel() error
}

// DurationProber reports the length of a media file
type DurationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}
