package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is the terminal error of a job cancelled by the user
	ErrCancelled = errors.New("conversion cancelled")

	// ErrJobActive is returned by Start while another job is running
	ErrJobActive = errors.New("a conversion is already in progress")

	// ErrJobFinished is returned when operating on a finished job
	ErrJobFinished = errors.New("conversion already finished")

	// ErrSourceMissing is returned when the input file cannot be read
	ErrSourceMissing = errors.New("source file does not exist")

	// ErrSameFile is returned when input and output are the same file
	ErrSameFile = errors.New("output path is the source file")

	// ErrTargetDir is returned when the output directory is not writable
	ErrTargetDir = errors.New("output directory is not writable")
)

// SpawnError means the transcoder process could not be started at all
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// TranscodeError means the transcoder exited with an error on its own
type TranscodeError struct {
	ExitCode int
	Detail   string
	Err      error
}

func (e *TranscodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("transcoder exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("transcoder exited with code %d: %s", e.ExitCode, e.Detail)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}
