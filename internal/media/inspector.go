package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ffprobe/ffmpeg invocation constants
const (
	FFprobeLogLevel     = "error"
	FFprobeOutputFormat = "json"
	ThumbnailCodec      = "png"
	ThumbnailTarget     = "pipe:1"
	DefaultThumbnailAt  = 1 * time.Second
	ProbeTimeout        = 15 * time.Second
)

var durationLineRe = regexp.MustCompile(`Duration:\s*(\d+):(\d{2}):(\d{2}(?:\.\d+)?)`)

// Info describes a media file as reported by ffprobe
type Info struct {
	Path       string
	Container  string
	Duration   time.Duration
	Size       int64
	Width      int
	Height     int
	VideoCodec string
	AudioCodec string
}

// HasVideo reports whether a video stream was found
func (i Info) HasVideo() bool {
	return i.VideoCodec != ""
}

// Inspector runs ffprobe and ffmpeg for metadata and preview frames
type Inspector struct {
	ffmpegPath  string
	ffprobePath string
	command     CommandFunc
	logger      hclog.Logger
}

// NewInspector creates an inspector for the given tool paths
func NewInspector(ffmpegPath, ffprobePath string, logger hclog.Logger) *Inspector {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Inspector{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		command:     DefaultCommand,
		logger:      logger,
	}
}

// WithCommand replaces the command builder
func (i *Inspector) WithCommand(fn CommandFunc) *Inspector {
	i.command = fn
	return i
}

type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		Size       string `json:"size"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Probe reads container and stream metadata for path
func (i *Inspector) Probe(ctx context.Context, path string) (Info, error) {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	cmd := i.command(ctx, i.ffprobePath,
		"-v", FFprobeLogLevel,
		"-print_format", FFprobeOutputFormat,
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Info{}, fmt.Errorf("ffprobe failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	info, err := ParseProbeOutput(stdout.Bytes())
	if err != nil {
		return Info{}, err
	}
	info.Path = path

	i.logger.Debug("probed media", "path", path, "container", info.Container, "duration", info.Duration)
	return info, nil
}

// Duration returns only the duration of path
func (i *Inspector) Duration(ctx context.Context, path string) (time.Duration, error) {
	info, err := i.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	if info.Duration <= 0 {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", path)
	}
	return info.Duration, nil
}

// Thumbnail extracts a single frame at offset as a decoded image
func (i *Inspector) Thumbnail(ctx context.Context, path string, at time.Duration) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	cmd := i.command(ctx, i.ffmpegPath,
		"-v", FFprobeLogLevel,
		"-ss", formatSeconds(at),
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", ThumbnailCodec,
		ThumbnailTarget,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg thumbnail failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no frame for %s", path)
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}
	return img, nil
}

// ParseProbeOutput converts ffprobe JSON into Info
func ParseProbeOutput(data []byte) (Info, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Info{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := Info{Container: out.Format.FormatName}

	if out.Format.Duration != "" {
		seconds, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return Info{}, fmt.Errorf("failed to parse duration: %w", err)
		}
		info.Duration = secondsToDuration(seconds)
	}

	if out.Format.Size != "" {
		if size, err := strconv.ParseInt(out.Format.Size, 10, 64); err == nil {
			info.Size = size
		}
	}

	for _, s := range out.Streams {
		switch s.CodecType {
		case "video":
			if info.VideoCodec == "" {
				info.VideoCodec = s.CodecName
				info.Width = s.Width
				info.Height = s.Height
			}
		case "audio":
			if info.AudioCodec == "" {
				info.AudioCodec = s.CodecName
			}
		}
	}

	return info, nil
}

// ParseDurationLine extracts the input duration from an ffmpeg log line such
// as "  Duration: 00:01:02.50, start: 0.000000, bitrate: 1205 kb/s"
func ParseDurationLine(line string) (time.Duration, bool) {
	m := durationLineRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, false
	}

	total := float64(hours*3600+minutes*60) + seconds
	if total <= 0 {
		return 0, false
	}
	return secondsToDuration(total), true
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
