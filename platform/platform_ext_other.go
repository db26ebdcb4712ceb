//go:build !linux && !darwin && !windows

package platform

import (
	"os"
	"path/filepath"
)

func GetSteamRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{filepath.Join(home, ".steam", "steam")}
}

func GetLauncher() (string, []string) {
	return "xdg-open", nil
}
