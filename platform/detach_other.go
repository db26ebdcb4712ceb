//go:build !unix && !windows

package platform

import "os/exec"

func Detach(cmd *exec.Cmd) {}
