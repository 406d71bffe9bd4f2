package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"calm/internal/modules/breath/domain"
	breathout "calm/internal/modules/breath/port/out"
	"calm/internal/platform/clock"
	apperrors "calm/internal/platform/errors"
	"calm/internal/platform/id"
)

const recordTimeout = 5 * time.Second

// Controller is the breathing-session state machine:
//
//	Idle -(Start)-> Running(0) -> ... -> Running(n-1) -> Settling -> Idle
//
// Phase changes are driven only by scheduler timers. Every armed timer is
// tagged with the run generation, and Abort bumps the generation, so a
// callback that slips past Timer.Stop never touches a newer run.
//
// Observers are called synchronously in event order and must not call Start
// or Abort from inside the callback.
type Controller struct {
	seq      domain.Sequence
	settle   time.Duration
	sched    clock.Scheduler
	clock    clock.Clock
	ids      id.Generator
	cue      breathout.CuePlayer
	recorder breathout.CompletionRecorder
	logger   *slog.Logger

	cueOn atomic.Bool

	mu    sync.Mutex
	state domain.State
	gen   uint64
	timer clock.Timer

	emitMu    sync.Mutex
	observers map[int]func(domain.Event)
	nextObs   int
}

type ControllerDeps struct {
	Scheduler clock.Scheduler
	Clock     clock.Clock
	IDs       id.Generator
	Cue       breathout.CuePlayer
	Recorder  breathout.CompletionRecorder
	Logger    *slog.Logger
}

func NewController(seq domain.Sequence, settle time.Duration, deps ControllerDeps) (*Controller, error) {
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if settle <= 0 {
		return nil, fmt.Errorf("%w: settle delay must be positive", apperrors.ErrInvalidInput)
	}
	if deps.Scheduler == nil || deps.Clock == nil || deps.IDs == nil || deps.Recorder == nil || deps.Logger == nil {
		return nil, fmt.Errorf("%w: controller dependencies are incomplete", apperrors.ErrInvalidInput)
	}
	c := &Controller{
		seq:       append(domain.Sequence(nil), seq...),
		settle:    settle,
		sched:     deps.Scheduler,
		clock:     deps.Clock,
		ids:       deps.IDs,
		cue:       deps.Cue,
		recorder:  deps.Recorder,
		logger:    deps.Logger,
		observers: map[int]func(domain.Event){},
	}
	c.cueOn.Store(deps.Cue != nil)
	return c, nil
}

func (c *Controller) Sequence() domain.Sequence {
	return append(domain.Sequence(nil), c.seq...)
}

func (c *Controller) SettleDelay() time.Duration { return c.settle }

// Subscribe registers an observer and returns a function that removes it.
func (c *Controller) Subscribe(fn func(domain.Event)) func() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	key := c.nextObs
	c.nextObs++
	c.observers[key] = fn
	return func() {
		c.emitMu.Lock()
		defer c.emitMu.Unlock()
		delete(c.observers, key)
	}
}

func (c *Controller) Snapshot() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetCueEnabled(on bool) { c.cueOn.Store(on && c.cue != nil) }

func (c *Controller) CueEnabled() bool { return c.cueOn.Load() }

// Start begins a run at phase 0. It fails with ErrSessionActive unless the
// controller is idle.
func (c *Controller) Start() (string, error) {
	c.mu.Lock()
	if c.state.Active() {
		c.mu.Unlock()
		return "", apperrors.ErrSessionActive
	}
	c.gen++
	runID := c.ids.New()
	c.state = domain.State{Status: domain.StatusRunning, PhaseIndex: 0, RunID: runID}
	ev := c.phaseEvent(0)
	c.arm(c.seq[0].Duration, c.gen)
	c.logger.Debug("breath run started", "run_id", runID)
	c.emitLocked(ev, true)
	return runID, nil
}

// Abort cancels the pending timer and returns to idle without recording.
// It reports whether a run was actually cancelled.
func (c *Controller) Abort() bool {
	c.mu.Lock()
	if !c.state.Active() {
		c.mu.Unlock()
		return false
	}
	runID := c.state.RunID
	c.stopTimer()
	c.gen++
	c.state = domain.State{}
	c.logger.Debug("breath run aborted", "run_id", runID)
	c.emitLocked(domain.Event{Kind: domain.EventAborted, RunID: runID, Total: len(c.seq)}, false)
	return true
}

func (c *Controller) arm(d time.Duration, gen uint64) {
	c.timer = c.sched.AfterFunc(d, func() { c.onTimer(gen) })
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) onTimer(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	switch c.state.Status {
	case domain.StatusRunning:
		next := c.state.PhaseIndex + 1
		if next < len(c.seq) {
			c.state.PhaseIndex = next
			ev := c.phaseEvent(next)
			c.arm(c.seq[next].Duration, gen)
			c.emitLocked(ev, true)
			return
		}
		c.state.Status = domain.StatusSettling
		c.arm(c.settle, gen)
		c.emitLocked(domain.Event{
			Kind:  domain.EventSettling,
			RunID: c.state.RunID,
			Index: c.state.PhaseIndex,
			Total: len(c.seq),
		}, false)
	case domain.StatusSettling:
		c.complete()
	default:
		c.mu.Unlock()
	}
}

// complete runs with c.mu held and releases it. The state stays Settling
// while the recorder runs so a concurrent Start is still rejected.
func (c *Controller) complete() {
	runID := c.state.RunID
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	completion, err := c.recorder.RecordCompletion(ctx, c.clock.Now())
	cancel()
	if err != nil {
		c.logger.Warn("record completion failed", "run_id", runID, "err", err)
	} else {
		c.logger.Info("breath run completed", "run_id", runID, "streak", completion.Streak)
	}
	c.gen++
	c.state = domain.State{}
	c.emitLocked(domain.Event{
		Kind:       domain.EventCompleted,
		RunID:      runID,
		Total:      len(c.seq),
		Completion: completion,
		Err:        err,
	}, false)
}

func (c *Controller) phaseEvent(i int) domain.Event {
	return domain.Event{
		Kind:  domain.EventPhase,
		RunID: c.state.RunID,
		Phase: c.seq[i],
		Index: i,
		Total: len(c.seq),
	}
}

// emitLocked hands off from c.mu to c.emitMu so events reach observers in
// the same order the state changed, then releases both.
func (c *Controller) emitLocked(ev domain.Event, withCue bool) {
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()
	if withCue {
		c.playCue(ev.Phase)
	}
	for _, fn := range c.observers {
		fn(ev)
	}
}

func (c *Controller) playCue(phase domain.Phase) {
	if !c.cueOn.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("cue panicked", "panic", r)
		}
	}()
	if err := c.cue.Cue(context.Background(), phase); err != nil {
		c.logger.Debug("cue failed", "err", err)
	}
}
