package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Tool names
const (
	FFmpegTool  = "ffmpeg"
	FFprobeTool = "ffprobe"
)

// BundledToolsDir is searched next to the executable before $PATH
const BundledToolsDir = "bin"

// ErrToolNotFound is returned when a binary cannot be located anywhere
var ErrToolNotFound = errors.New("tool not found")

// ToolFileName returns the platform specific executable name
func ToolFileName(tool string) string {
	if runtime.GOOS == OSWindows {
		return tool + ".exe"
	}
	return tool
}

// LocateTool resolves the binary for tool. Explicit candidates (flags,
// settings) win; then bin/ next to the executable and its parent, then $PATH.
func LocateTool(tool string, explicit ...string) (string, error) {
	for _, candidate := range explicit {
		if candidate == "" {
			continue
		}
		if isExecutableFile(candidate) {
			return candidate, nil
		}
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s (configured as %s)", ErrToolNotFound, tool, candidate)
	}

	name := ToolFileName(tool)

	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		searchPaths := []string{
			filepath.Join(exeDir, BundledToolsDir),
			filepath.Join(exeDir, "..", BundledToolsDir),
		}
		for _, dir := range searchPaths {
			candidate := filepath.Join(dir, name)
			if isExecutableFile(candidate) {
				return candidate, nil
			}
		}
	}

	if resolved, err := exec.LookPath(name); err == nil {
		return resolved, nil
	}

	return "", fmt.Errorf("%w: %s", ErrToolNotFound, tool)
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == OSWindows {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
