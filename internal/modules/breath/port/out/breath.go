package out

import (
	"context"
	"time"

	"calm/internal/modules/breath/domain"
)

// CuePlayer plays a short audible cue on a phase change. Callers ignore its
// errors.
type CuePlayer interface {
	Cue(ctx context.Context, phase domain.Phase) error
}

// CompletionRecorder records a finished run for the day containing today.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, today time.Time) (domain.Completion, error)
}
