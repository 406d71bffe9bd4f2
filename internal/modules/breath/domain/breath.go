package domain

import (
	"fmt"
	"time"
)

const (
	InhaleLabel = "Inhale…"
	ExhaleLabel = "Exhale…"
	DoneLabel   = "Well done. You are officially zen."

	// SettleDelay is the pause after the last phase before the run is
	// recorded and the controller returns to idle.
	SettleDelay = 800 * time.Millisecond
)

type Phase struct {
	Label    string
	Duration time.Duration
}

// Sequence is the ordered list of phases for one run.
type Sequence []Phase

// DefaultSequence is 4s + 4s + 2s.
func DefaultSequence() Sequence {
	return Sequence{
		{Label: InhaleLabel, Duration: 4000 * time.Millisecond},
		{Label: ExhaleLabel, Duration: 4000 * time.Millisecond},
		{Label: DoneLabel, Duration: 2000 * time.Millisecond},
	}
}

func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("sequence must have at least one phase")
	}
	for i, p := range s {
		if p.Duration <= 0 {
			return fmt.Errorf("phase %d (%q) must have a positive duration", i, p.Label)
		}
	}
	return nil
}

func (s Sequence) Total() time.Duration {
	var total time.Duration
	for _, p := range s {
		total += p.Duration
	}
	return total
}

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusSettling
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSettling:
		return "settling"
	default:
		return "idle"
	}
}

// State is the transient per-run state. It resets to Idle/0 when a run
// completes or is aborted.
type State struct {
	Status     Status
	PhaseIndex int
	RunID      string
}

func (s State) Active() bool { return s.Status != StatusIdle }

// Completion is what the streak looked like right after a run was recorded.
type Completion struct {
	Streak   int
	LastDate string
	Outcome  string
}

type EventKind int

const (
	EventPhase EventKind = iota
	EventSettling
	EventCompleted
	EventAborted
)

func (k EventKind) String() string {
	switch k {
	case EventPhase:
		return "phase"
	case EventSettling:
		return "settling"
	case EventCompleted:
		return "completed"
	case EventAborted:
		return "aborted"
	}
	return "unknown"
}

type Event struct {
	Kind       EventKind
	RunID      string
	Phase      Phase
	Index      int
	Total      int
	Completion Completion
	// Err is set on EventCompleted when recording the run failed.
	Err error
}

// Flourish reports whether the completion visual belongs on screen.
func (e Event) Flourish() bool {
	return e.Kind == EventPhase && e.Phase.Label == DoneLabel
}
