package usecase

import (
	"context"
	"sync"

	"calm/internal/modules/breath/domain"
	breathdto "calm/internal/modules/breath/dto"
	breathin "calm/internal/modules/breath/port/in"
	"calm/internal/modules/breath/service"
)

type Interactor struct {
	ctrl *service.Controller
}

func NewInteractor(ctrl *service.Controller) breathin.Usecase {
	return &Interactor{ctrl: ctrl}
}

func (i *Interactor) Sequence(_ context.Context) breathdto.SequenceOutput {
	seq := i.ctrl.Sequence()
	out := breathdto.SequenceOutput{Total: seq.Total(), Settle: i.ctrl.SettleDelay()}
	for _, p := range seq {
		out.Phases = append(out.Phases, breathdto.PhaseOutput{Label: p.Label, Duration: p.Duration})
	}
	return out
}

func (i *Interactor) Start(_ context.Context) (breathdto.StartOutput, error) {
	runID, err := i.ctrl.Start()
	if err != nil {
		return breathdto.StartOutput{}, err
	}
	return breathdto.StartOutput{RunID: runID}, nil
}

func (i *Interactor) Abort(_ context.Context) bool {
	return i.ctrl.Abort()
}

func (i *Interactor) State(_ context.Context) breathdto.StateOutput {
	return i.toState(i.ctrl.Snapshot())
}

func (i *Interactor) SetSound(_ context.Context, on bool) breathdto.StateOutput {
	i.ctrl.SetCueEnabled(on)
	return i.toState(i.ctrl.Snapshot())
}

func (i *Interactor) Subscribe(fn func(breathdto.EventOutput)) func() {
	return i.ctrl.Subscribe(func(ev domain.Event) { fn(toEvent(ev)) })
}

func (i *Interactor) Run(ctx context.Context, onEvent func(breathdto.EventOutput)) (breathdto.RunOutput, error) {
	var (
		mu     sync.Mutex
		runID  string
		phases []string
	)
	done := make(chan breathdto.EventOutput, 1)
	unsubscribe := i.ctrl.Subscribe(func(ev domain.Event) {
		mu.Lock()
		// The run is claimed by the first phase event Start emits; anything
		// before that, or from another run, is not ours.
		if runID == "" {
			if ev.Kind != domain.EventPhase || ev.Index != 0 {
				mu.Unlock()
				return
			}
			runID = ev.RunID
		}
		if ev.RunID != runID {
			mu.Unlock()
			return
		}
		if ev.Kind == domain.EventPhase {
			phases = append(phases, ev.Phase.Label)
		}
		mu.Unlock()

		out := toEvent(ev)
		if onEvent != nil {
			onEvent(out)
		}
		if ev.Kind == domain.EventCompleted || ev.Kind == domain.EventAborted {
			select {
			case done <- out:
			default:
			}
		}
	})
	defer unsubscribe()

	id, err := i.ctrl.Start()
	if err != nil {
		return breathdto.RunOutput{}, err
	}

	var ev breathdto.EventOutput
	var runErr error
	select {
	case ev = <-done:
		runErr = ev.RecordErr
	case <-ctx.Done():
		if i.ctrl.Abort() {
			ev = breathdto.EventOutput{Kind: domain.EventAborted.String()}
			runErr = ctx.Err()
		} else {
			// Lost the race with completion; its event is on the way.
			ev = <-done
			runErr = ev.RecordErr
		}
	}

	mu.Lock()
	defer mu.Unlock()
	return breathdto.RunOutput{
		RunID:    id,
		Phases:   append([]string(nil), phases...),
		Aborted:  ev.Kind == domain.EventAborted.String(),
		Streak:   ev.Streak,
		LastDate: ev.LastDate,
		Outcome:  ev.Outcome,
	}, runErr
}

func (i *Interactor) toState(s domain.State) breathdto.StateOutput {
	return breathdto.StateOutput{
		Status:     s.Status.String(),
		PhaseIndex: s.PhaseIndex,
		RunID:      s.RunID,
		Active:     s.Active(),
		Sound:      i.ctrl.CueEnabled(),
	}
}

func toEvent(ev domain.Event) breathdto.EventOutput {
	return breathdto.EventOutput{
		Kind:      ev.Kind.String(),
		RunID:     ev.RunID,
		Label:     ev.Phase.Label,
		Index:     ev.Index,
		Total:     ev.Total,
		Flourish:  ev.Flourish(),
		Streak:    ev.Completion.Streak,
		LastDate:  ev.Completion.LastDate,
		Outcome:   ev.Completion.Outcome,
		RecordErr: ev.Err,
	}
}
