package convert

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ytget/video-converter/internal/model"
)

// Outcome is the single terminal result of a job
type Outcome struct {
	Status model.JobStatus
	Err    error
}

// Completed reports whether the job produced its output
func (o Outcome) Completed() bool {
	return o.Status == model.JobStatusCompleted
}

// Job is the Handle implementation returned by Service.Start
type Job struct {
	mu       sync.Mutex
	snapshot model.ConversionJob
	outcome  Outcome
	cancel   context.CancelFunc
	onChange func(model.ConversionJob)

	cancelRequested atomic.Bool
	exited          bool // transcoder has exited, guarded by mu
	duration        atomic.Int64 // input duration in nanoseconds, 0 while unknown

	progress chan int
	done     chan struct{}
	once     sync.Once
}

func newJob(id, source string, format model.Format, target string) *Job {
	return &Job{
		snapshot: model.ConversionJob{
			ID:         id,
			SourcePath: source,
			Format:     format,
			TargetPath: target,
			Status:     model.JobStatusPending,
		},
		progress: make(chan int, 1),
		done:     make(chan struct{}),
	}
}

// ID returns the job identifier
func (j *Job) ID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.snapshot.ID
}

// Snapshot returns a copy of the current job state
func (j *Job) Snapshot() model.ConversionJob {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.snapshot
}

// Progress returns the percentage stream
func (j *Job) Progress() <-chan int {
	return j.progress
}

// Done is closed once the outcome is known
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Outcome returns the terminal result
func (j *Job) Outcome() Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outcome
}

// CancelRequested reports whether Cancel was called before the job finished
func (j *Job) CancelRequested() bool {
	return j.cancelRequested.Load()
}

// Cancel marks the job as cancelled and kills the transcoder. The outcome is
// delivered through Done once the process has actually exited.
func (j *Job) Cancel() error {
	j.mu.Lock()
	if j.exited || j.snapshot.Status.IsFinished() {
		j.mu.Unlock()
		return ErrJobFinished
	}
	if j.cancelRequested.Load() {
		j.mu.Unlock()
		return nil
	}

	j.cancelRequested.Store(true)
	j.snapshot.Status = model.JobStatusCancelling
	cancel := j.cancel
	snap := j.snapshot
	j.mu.Unlock()

	j.notify(snap)
	if cancel != nil {
		cancel()
	}
	return nil
}

func (j *Job) setRunning(cancel context.CancelFunc) {
	j.mu.Lock()
	j.cancel = cancel
	j.snapshot.Status = model.JobStatusRunning
	j.snapshot.StartedAt = time.Now()
	snap := j.snapshot
	j.mu.Unlock()

	j.notify(snap)
}

// markExited records that the transcoder process is gone. Cancel requests
// after this point no longer change the outcome.
func (j *Job) markExited() {
	j.mu.Lock()
	j.exited = true
	j.mu.Unlock()
}

// setDuration records the input duration unless one is already known
func (j *Job) setDuration(d time.Duration) {
	if d > 0 {
		j.duration.CompareAndSwap(0, int64(d))
	}
}

func (j *Job) inputDuration() time.Duration {
	return time.Duration(j.duration.Load())
}

// publish records p and offers it to the progress channel. Only the job's
// reader goroutine calls it.
func (j *Job) publish(p int) {
	j.mu.Lock()
	if j.snapshot.Status.IsFinished() {
		j.mu.Unlock()
		return
	}
	j.snapshot.Percent = p
	snap := j.snapshot
	j.mu.Unlock()

	j.offer(p)
	j.notify(snap)
}

// offer replaces any value the consumer has not picked up yet with p
func (j *Job) offer(p int) {
	select {
	case j.progress <- p:
	default:
		select {
		case <-j.progress:
		default:
		}
		select {
		case j.progress <- p:
		default:
		}
	}
}

// finish records the outcome exactly once and releases waiters. resolve is
// evaluated under the job lock so a concurrent Cancel either lands before
// classification or observes the finished job.
func (j *Job) finish(resolve func(cancelRequested bool) (Outcome, string), cleanup func(Outcome)) {
	j.once.Do(func() {
		j.mu.Lock()
		outcome, detail := resolve(j.cancelRequested.Load())
		reachedEnd := j.snapshot.Percent == 100
		if outcome.Completed() {
			j.snapshot.Percent = 100
		}
		j.outcome = outcome
		j.snapshot.Status = outcome.Status
		j.snapshot.LastError = detail
		j.snapshot.FinishedAt = time.Now()
		snap := j.snapshot
		j.mu.Unlock()

		if outcome.Completed() && !reachedEnd {
			j.offer(100)
		}
		if cleanup != nil {
			cleanup(outcome)
		}

		close(j.progress)
		j.notify(snap)
		close(j.done)
	})
}

func (j *Job) notify(snap model.ConversionJob) {
	if j.onChange != nil {
		j.onChange(snap)
	}
}
