//go:build !unix

package launcher

import "os/exec"

// setGracefulShutdown is a no-op where SIGINT is not available; the default
// cancel mechanism kills the child.
func setGracefulShutdown(cmd *exec.Cmd) {
	_ = cmd
}
