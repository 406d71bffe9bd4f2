package out

import (
	"context"
	"fmt"
	"io"

	"calm/internal/modules/breath/domain"
	breathout "calm/internal/modules/breath/port/out"
)

// BellCue rings the terminal bell.
type BellCue struct {
	w io.Writer
}

func NewBellCue(w io.Writer) breathout.CuePlayer {
	return &BellCue{w: w}
}

func (c *BellCue) Cue(_ context.Context, _ domain.Phase) error {
	if _, err := io.WriteString(c.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
