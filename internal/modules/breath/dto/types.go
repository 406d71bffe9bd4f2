package dto

import "time"

type PhaseOutput struct {
	Label    string
	Duration time.Duration
}

type SequenceOutput struct {
	Phases []PhaseOutput
	Total  time.Duration
	Settle time.Duration
}

type StartOutput struct {
	RunID string
}

type StateOutput struct {
	Status     string
	PhaseIndex int
	RunID      string
	Active     bool
	Sound      bool
}

// EventOutput is one observable step of a run.
type EventOutput struct {
	Kind      string
	RunID     string
	Label     string
	Index     int
	Total     int
	Flourish  bool
	Streak    int
	LastDate  string
	Outcome   string
	RecordErr error
}

type RunOutput struct {
	RunID    string
	Phases   []string
	Aborted  bool
	Streak   int
	LastDate string
	Outcome  string
}
