//go:build darwin

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

	return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
}

func GetLauncher() (string, []string) {
	return "open", nil
}
