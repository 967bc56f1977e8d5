package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetHomeMediaDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := GetHomeMediaDir()
	if err != nil {
		t.Fatalf("Failed to get media directory: %v", err)
	}
	if dir != home {
		t.Errorf("Expected fallback to home %s, got %s", home, dir)
	}

	videos := filepath.Join(home, "Videos")
	if err := os.Mkdir(videos, 0o755); err != nil {
		t.Fatalf("Failed to create Videos dir: %v", err)
	}

	dir, err = GetHomeMediaDir()
	if err != nil {
		t.Fatalf("Failed to get media directory: %v", err)
	}
	if dir != videos {
		t.Errorf("Expected %s, got %s", videos, dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp4")

	err := OpenFileInManager(nonExistentFile)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("Expected empty path error, got: %v", err)
	}
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()
	if !IsDirWritable(dir) {
		t.Errorf("Expected temp dir %s to be writable", dir)
	}

	if IsDirWritable(filepath.Join(dir, "missing")) {
		t.Error("Missing directory should not be writable")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Write check should not leave files behind, found %d", len(entries))
	}
}

func TestLocateTool_Explicit(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("permission bits are not meaningful on windows")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "ffmpeg-custom")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}

	path, err := LocateTool(FFmpegTool, "", tool)
	if err != nil {
		t.Fatalf("Expected explicit tool to resolve, got: %v", err)
	}
	if path != tool {
		t.Errorf("Expected %s, got %s", tool, path)
	}
}

func TestLocateTool_ExplicitMissing(t *testing.T) {
	_, err := LocateTool(FFmpegTool, filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got: %v", err)
	}
}

func TestLocateTool_SearchPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("permission bits are not meaningful on windows")
	}

	dir := t.TempDir()
	t.Setenv("PATH", dir)

	if _, err := LocateTool("definitely-not-installed-tool"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got: %v", err)
	}

	tool := filepath.Join(dir, "fake-probe")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}

	path, err := LocateTool("fake-probe")
	if err != nil {
		t.Fatalf("Expected tool on PATH to resolve, got: %v", err)
	}
	if path != tool {
		t.Errorf("Expected %s, got %s", tool, path)
	}
}
