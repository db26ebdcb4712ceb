//go:build unix

package platform

import (
	"os/exec"
	"syscall"
)

// Detach puts cmd in its own session so closing our terminal does not
// take the launched game down with it.
func Detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
