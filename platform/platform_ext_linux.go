//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// GetSteamRoots lists candidate Steam install locations, most common first.
func GetSteamRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		// flatpak
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
}

func GetLauncher() (string, []string) {
	return "xdg-open", nil
}
