package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	shareout "calm/internal/modules/share/port/out"
	apperrors "calm/internal/platform/errors"
)

type OSExternalLauncher struct{}

func NewOSExternalLauncher() shareout.Launcher {
	return &OSExternalLauncher{}
}

func (l *OSExternalLauncher) Open(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("%w on %s", apperrors.ErrLauncherDisabled, runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open external target: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
