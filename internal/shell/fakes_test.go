package shell

import (
	"context"
	"os"
	"sync"

	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/model"
)

type fakeHandle struct {
	id       string
	snapshot model.ConversionJob
	progress chan int
	done     chan struct{}

	mu        sync.Mutex
	outcome   convert.Outcome
	cancelled bool
	finished  bool
}

func newFakeHandle(source string, format model.Format, target string) *fakeHandle {
	return &fakeHandle{
		id:       "convert-test",
		snapshot: model.ConversionJob{ID: "convert-test", SourcePath: source, Format: format, TargetPath: target, Status: model.JobStatusRunning},
		progress: make(chan int, 8),
		done:     make(chan struct{}),
	}
}

func (h *fakeHandle) ID() string                    { return h.id }
func (h *fakeHandle) Snapshot() model.ConversionJob { return h.snapshot }
func (h *fakeHandle) Progress() <-chan int          { return h.progress }
func (h *fakeHandle) Done() <-chan struct{}         { return h.done }

func (h *fakeHandle) Outcome() convert.Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome
}

// Cancel behaves like the real controller: the process reports a generic
// error after being killed, which still classifies as cancelled
func (h *fakeHandle) Cancel() error {
	h.mu.Lock()
	if h.finished {
		h.mu.Unlock()
		return convert.ErrJobFinished
	}
	h.cancelled = true
	h.mu.Unlock()

	go h.exit(&convert.TranscodeError{ExitCode: 255, Detail: "Exiting normally, received signal 15."})
	return nil
}

// exit finishes the job the way the process ended, honouring a prior cancel
func (h *fakeHandle) exit(processErr error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return
	}
	h.finished = true
	switch {
	case h.cancelled:
		h.outcome = convert.Outcome{Status: model.JobStatusCancelled, Err: convert.ErrCancelled}
	case processErr != nil:
		h.outcome = convert.Outcome{Status: model.JobStatusFailed, Err: processErr}
	default:
		h.outcome = convert.Outcome{Status: model.JobStatusCompleted}
	}
	close(h.progress)
	close(h.done)
}

func (h *fakeHandle) wasCancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

// jobScript drives a started fake job
type jobScript func(h *fakeHandle)

func completeWith(percents ...int) jobScript {
	return func(h *fakeHandle) {
		for _, p := range percents {
			h.progress <- p
		}
		_ = os.WriteFile(h.snapshot.TargetPath, []byte("converted"), 0o644)
		h.exit(nil)
	}
}

func failWith(err error) jobScript {
	return func(h *fakeHandle) {
		h.exit(err)
	}
}

// hang leaves the job running until cancelled
func hang() jobScript {
	return func(*fakeHandle) {}
}

type startCall struct {
	source string
	format model.Format
	target string
}

type fakeController struct {
	mu       sync.Mutex
	script   jobScript
	startErr error
	calls    []startCall
	handle   *fakeHandle
}

func (c *fakeController) SetUpdateCallback(func(model.ConversionJob)) {}

func (c *fakeController) Start(source string, format model.Format, target string) (convert.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, startCall{source, format, target})
	if c.startErr != nil {
		return nil, c.startErr
	}
	c.handle = newFakeHandle(source, format, target)
	go c.script(c.handle)
	return c.handle, nil
}

func (c *fakeController) Active() (convert.Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil {
		return nil, false
	}
	select {
	case <-c.handle.done:
		return nil, false
	default:
		return c.handle, true
	}
}

func (c *fakeController) startCalls() []startCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]startCall(nil), c.calls...)
}

type fakeDialogs struct {
	mu        sync.Mutex
	open      []string
	openErr   error
	save      string
	saveErr   error
	suggested string
	answer    bool
	questions []Question
	notices   []Notice
}

func (d *fakeDialogs) OpenFile(context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open, d.openErr
}

func (d *fakeDialogs) SaveFile(_ context.Context, _ model.Format, suggested string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suggested = suggested
	return d.save, d.saveErr
}

func (d *fakeDialogs) Confirm(_ context.Context, q Question) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.questions = append(d.questions, q)
	return d.answer, nil
}

func (d *fakeDialogs) Notify(n Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, n)
}

func (d *fakeDialogs) noticeCodes() []NoticeCode {
	d.mu.Lock()
	defer d.mu.Unlock()
	var codes []NoticeCode
	for _, n := range d.notices {
		codes = append(codes, n.Code)
	}
	return codes
}

func (d *fakeDialogs) lastNotice() Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.notices) == 0 {
		return Notice{}
	}
	return d.notices[len(d.notices)-1]
}

type fakeMenu struct {
	mu      sync.Mutex
	applied []model.Enablement
}

func (m *fakeMenu) Apply(e model.Enablement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = append(m.applied, e)
}

func (m *fakeMenu) last() model.Enablement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied[len(m.applied)-1]
}

type fakePlayback struct {
	mu    sync.Mutex
	shown []string
}

func (p *fakePlayback) Show(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = append(p.shown, path)
}

func (p *fakePlayback) last() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.shown) == 0 {
		return ""
	}
	return p.shown[len(p.shown)-1]
}

// fakePresenter records what the shell looked like while the job ran
type fakePresenter struct {
	mu         sync.Mutex
	presented  int
	dismissed  int
	cancel     bool
	during     func()
	progress   []int
	menuDuring model.Enablement
	menu       *fakeMenu
}

func (p *fakePresenter) Present(h convert.Handle, _ model.Format) func() {
	p.mu.Lock()
	p.presented++
	p.menuDuring = p.menu.last()
	during, cancel := p.during, p.cancel
	p.mu.Unlock()

	if during != nil {
		during()
	}
	if cancel {
		_ = h.Cancel()
	}

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for v := range h.Progress() {
			p.mu.Lock()
			p.progress = append(p.progress, v)
			p.mu.Unlock()
		}
	}()

	return func() {
		<-collected
		p.mu.Lock()
		p.dismissed++
		p.mu.Unlock()
	}
}

type fakeRevealer struct {
	mu       sync.Mutex
	revealed []string
}

func (r *fakeRevealer) Reveal(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revealed = append(r.revealed, path)
	return nil
}

type fakeWatcher struct {
	mu      sync.Mutex
	watched []string
}

func (w *fakeWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watched = append(w.watched, path)
	return nil
}
