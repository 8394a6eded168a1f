package auth

import (
	"context"
	"os/exec"
	"runtime"
)

// OpenBrowser opens url with the platform's default handler
func OpenBrowser(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// The handler detaches; reap it without waiting on the browser
	go func() { _ = cmd.Wait() }()
	return nil
}
