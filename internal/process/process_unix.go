//go:build !windows

package process

import "os/exec"

// configure is a no-op on Unix; CommandContext already kills the child with
// SIGKILL when the context is done.
func configure(_ *exec.Cmd) {}
