package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"

	shareout "calm/internal/modules/share/port/out"
	apperrors "calm/internal/platform/errors"
)

// OSC52Clipboard copies through the terminal's OSC 52 escape, which also
// works over SSH. Inside tmux or screen the sequence is wrapped for
// passthrough.
type OSC52Clipboard struct {
	w    io.Writer
	term string
	tmux bool
}

func NewOSC52Clipboard(w io.Writer) shareout.Clipboard {
	return &OSC52Clipboard{w: w, term: os.Getenv("TERM"), tmux: os.Getenv("TMUX") != ""}
}

func (c *OSC52Clipboard) Copy(_ context.Context, text string) error {
	if c.w == nil {
		return apperrors.ErrClipboard
	}
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrClipboard, err)
	}
	return nil
}
