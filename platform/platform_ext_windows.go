//go:build windows

package platform

import (
	"os/exec"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const defaultSteamPath = `C:\Program Files (x86)\Steam`

func GetSteamRoots() []string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return []string{defaultSteamPath}
	}
	defer key.Close()

	steamPath, _, err := key.GetStringValue("SteamPath")
	if err != nil || steamPath == "" {
		return []string{defaultSteamPath}
	}

	return []string{filepath.Clean(steamPath), defaultSteamPath}
}

func GetLauncher() (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler"}
}

// Detach starts cmd outside of the console's process group so the
// launched game survives our exit.
func Detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
