package model

// Enablement records which convert commands are available.
// It is recomputed from the loaded file and applied to the menu in one step.
type Enablement struct {
	AVI  bool
	MP4  bool
	WebM bool
}

// ComputeEnablement derives command availability from the loaded file.
// Everything is disabled while nothing is loaded or a job is in flight; the
// command matching the loaded file's own extension is always disabled.
func ComputeEnablement(loaded string, busy bool) Enablement {
	if loaded == "" || busy {
		return Enablement{}
	}
	return Enablement{
		AVI:  !HasFormat(loaded, FormatAVI),
		MP4:  !HasFormat(loaded, FormatMP4),
		WebM: !HasFormat(loaded, FormatWebM),
	}
}

// Enabled returns the state of the command for f
func (e Enablement) Enabled(f Format) bool {
	switch f {
	case FormatAVI:
		return e.AVI
	case FormatMP4:
		return e.MP4
	case FormatWebM:
		return e.WebM
	default:
		return false
	}
}

// Any reports whether at least one command is enabled
func (e Enablement) Any() bool {
	return e.AVI || e.MP4 || e.WebM
}
