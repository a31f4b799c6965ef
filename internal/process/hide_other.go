//go:build !windows

package process

import "os/exec"

// Console windows only exist on Windows.
func hideConsole(_ *exec.Cmd) {}
