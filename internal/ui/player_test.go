package ui

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/video-converter/internal/media"
)

type fakeInspector struct {
	mu         sync.Mutex
	info       media.Info
	probeErr   error
	thumbnails []string
}

func (f *fakeInspector) Probe(_ context.Context, path string) (media.Info, error) {
	info := f.info
	info.Path = path
	return info, f.probeErr
}

func (f *fakeInspector) Thumbnail(_ context.Context, path string, _ time.Duration) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.thumbnails = append(f.thumbnails, path)
	return image.NewRGBA(image.Rect(0, 0, 16, 9)), nil
}

func (f *fakeInspector) thumbnailCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.thumbnails)
}

func newTestPlayer(t *testing.T, inspector MediaInspector) *Player {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	l := NewLocalization()
	l.SetLanguage("en")
	return NewPlayer(inspector, l, hclog.NewNullLogger())
}

func TestPlayer_ShowPreviewable(t *testing.T) {
	inspector := &fakeInspector{info: media.Info{
		Container:  "mov,mp4,m4a,3gp,3g2,mj2",
		Duration:   62 * time.Second,
		Size:       10_485_760,
		Width:      1280,
		Height:     720,
		VideoCodec: "h264",
		AudioCodec: "aac",
	}}
	p := newTestPlayer(t, inspector)

	p.Show("/videos/movie.mp4")

	assert.Equal(t, "movie.mp4", p.title.Text)
	assert.False(t, p.playBtn.Disabled())
	assert.Eventually(t, func() bool { return p.preview.Image != nil }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "MP4 · 1:02 · 1280×720 · h264/aac · 10 MB", p.details.Text)
	assert.Empty(t, p.status.Text)
}

func TestPlayer_ShowWithoutPreview(t *testing.T) {
	inspector := &fakeInspector{info: media.Info{Duration: time.Second}}
	p := newTestPlayer(t, inspector)

	p.Show("/videos/clip.avi")

	assert.Eventually(t, func() bool {
		return p.status.Text == "No preview available"
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, inspector.thumbnailCount(), "avi is not previewed")
	assert.Nil(t, p.preview.Image)
}

func TestPlayer_ProbeFailure(t *testing.T) {
	inspector := &fakeInspector{probeErr: errors.New("ffprobe failed")}
	p := newTestPlayer(t, inspector)

	p.Show("/videos/movie.webm")

	assert.Eventually(t, func() bool { return p.preview.Image != nil }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "WEBM", p.details.Text)
}

func TestPlayer_Clear(t *testing.T) {
	p := newTestPlayer(t, &fakeInspector{})

	p.Show("/videos/movie.mkv")
	p.Show("")

	assert.Empty(t, p.Path())
	assert.Empty(t, p.title.Text)
	assert.True(t, p.playBtn.Disabled())
	assert.True(t, p.showBtn.Disabled())
	assert.True(t, strings.HasPrefix(p.status.Text, "Load a video"))
}

func TestFormatDetails(t *testing.T) {
	tests := []struct {
		info     media.Info
		expected string
	}{
		{media.Info{}, DashPlaceholder},
		{media.Info{Container: "matroska,webm", Duration: 3725 * time.Second}, "MATROSKA · 1:02:05"},
		{media.Info{Path: "/v/a.flv", VideoCodec: "flv1"}, "FLV · flv1/" + DashPlaceholder},
		{media.Info{Size: 1500}, "1.5 kB"},
	}

	for _, tt := range tests {
		if got := FormatDetails(tt.info); got != tt.expected {
			t.Errorf("FormatDetails(%+v) = %q, expected %q", tt.info, got, tt.expected)
		}
	}
}
