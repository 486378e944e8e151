//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// setGracefulShutdown makes context cancellation interrupt the child instead
// of killing it outright. WaitDelay takes over if it does not exit.
func setGracefulShutdown(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGINT)
	}
}
