package ui

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/media"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
	"github.com/ytget/video-converter/internal/shell"
)

// MediaInspector reads metadata and preview frames for the playback surface
type MediaInspector interface {
	Probe(ctx context.Context, path string) (media.Info, error)
	Thumbnail(ctx context.Context, path string, at time.Duration) (image.Image, error)
}

// Player is the playback surface: a preview frame, file details and
// actions to play the file externally or reveal it
type Player struct {
	inspector    MediaInspector
	localization *Localization
	logger       hclog.Logger

	preview *canvas.Image
	title   *widget.Label
	details *widget.Label
	status  *widget.Label
	playBtn *widget.Button
	showBtn *widget.Button
	content *fyne.Container

	mu         sync.Mutex
	path       string
	generation int
}

var (
	_ shell.Playback = (*Player)(nil)
	_ shell.Revealer = (*Player)(nil)
)

// NewPlayer builds the playback surface. Call from the UI goroutine.
func NewPlayer(inspector MediaInspector, localization *Localization, logger hclog.Logger) *Player {
	p := &Player{
		inspector:    inspector,
		localization: localization,
		logger:       logger,
	}

	p.preview = canvas.NewImageFromImage(nil)
	p.preview.FillMode = canvas.ImageFillContain
	p.preview.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))

	p.title = widget.NewLabel("")
	p.title.TextStyle = fyne.TextStyle{Bold: true}
	p.title.Truncation = fyne.TextTruncateEllipsis
	p.details = widget.NewLabel("")
	p.status = widget.NewLabel(localization.GetText(KeyNoVideo))
	p.status.Alignment = fyne.TextAlignCenter

	p.playBtn = widget.NewButton(IconPlay+" "+localization.GetText(KeyPlay), p.onPlay)
	p.playBtn.Importance = widget.HighImportance
	p.showBtn = widget.NewButton(IconFolder+" "+localization.GetText(KeyReveal), p.onReveal)
	p.playBtn.Disable()
	p.showBtn.Disable()

	actions := container.NewHBox(p.playBtn, p.showBtn)
	info := container.NewVBox(p.title, p.details, actions)
	p.content = container.NewBorder(nil, info, nil, nil, container.NewStack(p.preview, container.NewCenter(p.status)))

	return p
}

// Content returns the surface's canvas object
func (p *Player) Content() fyne.CanvasObject {
	return p.content
}

// Path returns the file currently shown
func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// Show replaces the displayed file. Metadata and the preview frame are read
// in the background; results for a file that was replaced meanwhile are dropped.
func (p *Player) Show(path string) {
	p.mu.Lock()
	p.path = path
	p.generation++
	generation := p.generation
	p.mu.Unlock()

	fyne.Do(func() {
		p.preview.Image = nil
		p.preview.Refresh()
		p.details.SetText("")
		if path == "" {
			p.title.SetText("")
			p.status.SetText(p.localization.GetText(KeyNoVideo))
			p.playBtn.Disable()
			p.showBtn.Disable()
			return
		}
		p.title.SetText(filepath.Base(path))
		p.status.SetText(p.localization.GetText(KeyReadingVideo))
		p.playBtn.Enable()
		p.showBtn.Enable()
	})

	if path == "" || p.inspector == nil {
		return
	}
	go p.load(path, generation)
}

func (p *Player) load(path string, generation int) {
	ctx, cancel := context.WithTimeout(context.Background(), PreviewTimeout)
	defer cancel()

	info, err := p.inspector.Probe(ctx, path)
	if err != nil {
		p.logger.Warn("failed to probe video", "path", path, "error", err)
	}

	var frame image.Image
	if model.IsPreviewable(path) {
		at := media.DefaultThumbnailAt
		if info.Duration > 0 && info.Duration < 2*at {
			at = info.Duration / 2
		}
		frame, err = p.inspector.Thumbnail(ctx, path, at)
		if err != nil {
			p.logger.Warn("failed to extract preview frame", "path", path, "error", err)
		}
	}

	if !p.current(generation) {
		return
	}

	details := FormatDetails(info)
	fyne.Do(func() {
		if !p.current(generation) {
			return
		}
		p.details.SetText(details)
		if frame == nil {
			p.status.SetText(p.localization.GetText(KeyPreviewUnavailable))
			return
		}
		p.status.SetText("")
		p.preview.Image = frame
		p.preview.Refresh()
	})
}

func (p *Player) current(generation int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation == generation
}

// Refresh re-applies translated texts after a language change
func (p *Player) Refresh() {
	p.playBtn.SetText(IconPlay + " " + p.localization.GetText(KeyPlay))
	p.showBtn.SetText(IconFolder + " " + p.localization.GetText(KeyReveal))
	if p.Path() == "" {
		p.status.SetText(p.localization.GetText(KeyNoVideo))
	}
}

// Reveal shows path in the system file manager
func (p *Player) Reveal(path string) error {
	return platform.OpenFileInManager(path)
}

func (p *Player) onPlay() {
	path := p.Path()
	if path == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		p.logger.Error("failed to open video", "path", path, "error", err)
		p.status.SetText(p.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

func (p *Player) onReveal() {
	path := p.Path()
	if path == "" {
		return
	}
	if err := p.Reveal(path); err != nil {
		p.logger.Error("failed to reveal video", "path", path, "error", err)
		p.status.SetText(p.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// FormatDetails renders the one-line summary under the preview
func FormatDetails(info media.Info) string {
	var parts []string
	if name := containerName(info); name != "" {
		parts = append(parts, strings.ToUpper(name))
	}
	if info.Duration > 0 {
		parts = append(parts, formatClock(info.Duration))
	}
	if info.Width > 0 && info.Height > 0 {
		parts = append(parts, fmt.Sprintf(ResolutionFormat, info.Width, info.Height))
	}
	if info.VideoCodec != "" || info.AudioCodec != "" {
		parts = append(parts, codecPair(info.VideoCodec, info.AudioCodec))
	}
	if info.Size > 0 {
		parts = append(parts, humanize.Bytes(uint64(info.Size)))
	}
	if len(parts) == 0 {
		return DashPlaceholder
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// containerName prefers the file extension; ffprobe lists every alias of a demuxer
func containerName(info media.Info) string {
	if ext := model.ExtensionOf(info.Path); ext != "" {
		return ext
	}
	name, _, _ := strings.Cut(info.Container, ",")
	return name
}

func codecPair(video, audio string) string {
	if video == "" {
		video = DashPlaceholder
	}
	if audio == "" {
		audio = DashPlaceholder
	}
	return video + "/" + audio
}

// formatClock renders d as h:mm:ss, or m:ss under an hour
func formatClock(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
