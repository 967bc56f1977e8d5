package shell

import "errors"

var (
	// ErrDialogCancelled means the user dismissed a dialog; the action is
	// abandoned without a message
	ErrDialogCancelled = errors.New("dialog cancelled")

	// ErrBusy is returned while a conversion is in flight
	ErrBusy = errors.New("a conversion is in progress")

	// ErrNoFile is returned by Convert when nothing is loaded
	ErrNoFile = errors.New("no video loaded")

	// ErrCommandDisabled is returned for a convert command that is not enabled
	ErrCommandDisabled = errors.New("convert command is disabled")

	// ErrMultipleSelection is returned when more than one file is loaded at once
	ErrMultipleSelection = errors.New("only one file can be loaded")

	// ErrUnsupportedInput is returned for files outside the media filter
	ErrUnsupportedInput = errors.New("unsupported input file")
)
