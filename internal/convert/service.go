package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/media"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
)

// FFmpeg invocation constants
const (
	ProgressPipeTarget  = "pipe:1"
	ProgressTimePrefix  = "out_time_us="
	ProgressStatePrefix = "progress="
	ProgressStateEnd    = "end"
	TaskIDPrefix        = "convert-"

	// StderrTailLines is how much transcoder output is kept for error reports
	StderrTailLines = 8

	// ExitWaitDelay bounds how long Wait blocks on pipes after the process is gone
	ExitWaitDelay = 5 * time.Second
)

// Options configures a Service
type Options struct {
	FFmpegPath string
	Profiles   map[model.Format]model.Profile
	Prober     DurationProber
	Command    media.CommandFunc
	Logger     hclog.Logger
}

// Service drives the external transcoder, one job at a time
type Service struct {
	ffmpegPath string
	profiles   map[model.Format]model.Profile
	prober     DurationProber
	command    media.CommandFunc
	logger     hclog.Logger

	mu     sync.Mutex
	active *Job

	callbackMu sync.RWMutex
	onUpdate   func(model.ConversionJob) // callback for UI updates
}

var _ Controller = (*Service)(nil)

// NewService creates a new conversion service
func NewService(opts Options) *Service {
	s := &Service{
		ffmpegPath: opts.FFmpegPath,
		profiles:   opts.Profiles,
		prober:     opts.Prober,
		command:    opts.Command,
		logger:     opts.Logger,
	}
	if s.ffmpegPath == "" {
		s.ffmpegPath = platform.FFmpegTool
	}
	if s.command == nil {
		s.command = media.DefaultCommand
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	return s
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(model.ConversionJob)) {
	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()
	s.onUpdate = callback
}

// Active returns the running job, if any
func (s *Service) Active() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, false
	}
	return s.active, true
}

// Start spawns the transcoder converting sourcePath into targetPath using the
// container format. A SpawnError means no job was created.
func (s *Service) Start(sourcePath string, format model.Format, targetPath string) (Handle, error) {
	if _, err := model.ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if err := s.checkIdle(); err != nil {
		return nil, err
	}
	if err := validatePaths(sourcePath, targetPath); err != nil {
		return nil, err
	}

	job := newJob(generateJobID(), sourcePath, format, targetPath)
	job.onChange = s.notifyUpdate

	// A missing duration only costs us percentages; ffmpeg's own log is the fallback.
	if s.prober != nil {
		if d, err := s.prober.Duration(context.Background(), sourcePath); err != nil {
			s.logger.Warn("could not probe duration, falling back to transcoder log", "source", sourcePath, "error", err)
		} else {
			job.setDuration(d)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, ErrJobActive
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := s.command(ctx, s.ffmpegPath, s.BuildFFmpegArgs(sourcePath, format, targetPath)...)
	cmd.WaitDelay = ExitWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, &SpawnError{Tool: s.ffmpegPath, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		cancel()
		return nil, &SpawnError{Tool: s.ffmpegPath, Err: err}
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, &SpawnError{Tool: s.ffmpegPath, Err: err}
	}

	s.active = job
	job.setRunning(cancel)

	s.logger.Info("conversion started", "job_id", job.ID(), "format", format, "source", sourcePath, "target", targetPath)

	go s.run(job, cmd, cancel, stdout, stderr)

	return job, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(sourcePath string, format model.Format, targetPath string) []string {
	args := []string{
		"-hide_banner",
		"-y",             // Overwrite output file
		"-i", sourcePath, // Input file
	}
	if profile, ok := s.profiles[format]; ok {
		args = append(args, profile.Args()...)
	}
	return append(args,
		"-f", string(format), // Output container
		"-progress", ProgressPipeTarget, // Machine-readable progress on stdout
		"-nostats",
		targetPath,
	)
}

// run waits for the transcoder and classifies its exit
func (s *Service) run(job *Job, cmd *exec.Cmd, cancel context.CancelFunc, stdout, stderr io.ReadCloser) {
	defer cancel()

	tail := newLineTail(StderrTailLines)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.monitorProgress(stdout, job)
	}()
	go func() {
		defer wg.Done()
		s.monitorLog(stderr, job, tail)
	}()
	wg.Wait()

	waitErr := cmd.Wait()
	job.markExited()

	s.mu.Lock()
	if s.active == job {
		s.active = nil
	}
	s.mu.Unlock()

	job.finish(func(cancelRequested bool) (Outcome, string) {
		return classifyExit(waitErr, cancelRequested, tail.String())
	}, func(outcome Outcome) {
		if outcome.Completed() {
			return
		}
		// Remove partial output file
		if err := os.Remove(job.Snapshot().TargetPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to remove partial output", "target", job.Snapshot().TargetPath, "error", err)
		}
	})

	snap := job.Snapshot()
	switch snap.Status {
	case model.JobStatusCompleted:
		s.logger.Info("conversion completed", "job_id", snap.ID, "target", snap.TargetPath, "elapsed", snap.Elapsed())
	case model.JobStatusCancelled:
		s.logger.Info("conversion cancelled", "job_id", snap.ID)
	default:
		s.logger.Error("conversion failed", "job_id", snap.ID, "error", job.Outcome().Err)
	}
}

// classifyExit maps the process exit to a terminal outcome. A requested
// cancel always wins over whatever the process reported.
func classifyExit(waitErr error, cancelRequested bool, detail string) (Outcome, string) {
	if cancelRequested {
		return Outcome{Status: model.JobStatusCancelled, Err: ErrCancelled}, ""
	}
	if waitErr == nil {
		return Outcome{Status: model.JobStatusCompleted}, ""
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return Outcome{
		Status: model.JobStatusFailed,
		Err:    &TranscodeError{ExitCode: exitCode, Detail: detail, Err: waitErr},
	}, detail
}

// monitorProgress parses ffmpeg -progress key=value output
func (s *Service) monitorProgress(stdout io.Reader, job *Job) {
	scanner := bufio.NewScanner(stdout)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, ProgressTimePrefix):
			// Parse progress line: out_time_us=123456
			timeMicroseconds, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
			if err != nil {
				continue
			}
			percent, ok := computePercent(time.Duration(timeMicroseconds)*time.Microsecond, job.inputDuration())
			if !ok {
				continue
			}
			s.logger.Trace("conversion progress", "job_id", job.ID(), "percent", percent)
			job.publish(percent)

		case line == ProgressStatePrefix+ProgressStateEnd:
			job.publish(100)
		}
	}
}

// monitorLog keeps the tail of ffmpeg's log and picks up the input duration
// when ffprobe could not provide it
func (s *Service) monitorLog(stderr io.Reader, job *Job, tail *lineTail) {
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if job.inputDuration() == 0 {
			if d, ok := media.ParseDurationLine(line); ok {
				job.setDuration(d)
			}
		}
		tail.Add(line)
	}
}

// computePercent converts an output timestamp into a rounded percentage
func computePercent(outTime, total time.Duration) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	percent := int(math.Round(float64(outTime) / float64(total) * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent, true
}

func (s *Service) checkIdle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return ErrJobActive
	}
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job model.ConversionJob) {
	s.callbackMu.RLock()
	callback := s.onUpdate
	s.callbackMu.RUnlock()

	if callback != nil {
		callback(job)
	}
}

func validatePaths(sourcePath, targetPath string) error {
	info, err := os.Stat(sourcePath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceMissing, sourcePath)
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}
	absTarget, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}
	if absSource == absTarget {
		return ErrSameFile
	}

	if !platform.IsDirWritable(filepath.Dir(absTarget)) {
		return fmt.Errorf("%w: %s", ErrTargetDir, filepath.Dir(absTarget))
	}
	return nil
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
