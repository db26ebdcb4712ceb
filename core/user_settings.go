package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gamepick/platform"

	"gopkg.in/yaml.v3"
)

const DefaultSettingsFile = "settings.yaml"

var DefaultExcludeKeywords = []string{
	"soundtrack",
	"demo",
	"dedicated server",
	"server",
	"tool",
	"tools",
	"sdk",
	"proton",
	"steam linux runtime",
	"steamworks common redistributables",
	"redistributable",
	"playtest",
	"benchmark",
	"artbook",
}

type CommandSpec struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

type UserSettings struct {
	SteamRoot       string      `yaml:"steam_root"`
	DescriptorDir   string      `yaml:"descriptor_dir"`
	IconCache       string      `yaml:"icon_cache"`
	ExcludeKeywords []string    `yaml:"exclude_keywords"`
	ExcludeIds      []string    `yaml:"exclude_ids"`
	Finder          CommandSpec `yaml:"finder"`
	BuiltinSelector bool        `yaml:"builtin_selector"`
	Launcher        CommandSpec `yaml:"launcher"`
	UriScheme       string      `yaml:"uri_scheme"`
}

func GetDefaultSettingsPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultSettingsFile
	}
	return filepath.Join(configDir, APP_NAME, DefaultSettingsFile)
}

func GetDefaultDescriptorDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "games"
	}
	return filepath.Join(configDir, APP_NAME, "games")
}

// GetDefaultSteamRoot returns the first platform candidate that exists, or
// the first candidate when none do so the error message names a real path.
func GetDefaultSteamRoot() string {
	roots := platform.GetSteamRoots()
	for _, root := range roots {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return root
		}
	}

	if len(roots) > 0 {
		return roots[0]
	}
	return ""
}

func DefaultUserSettings() *UserSettings {
	launcher, launcherArgs := platform.GetLauncher()
	return &UserSettings{
		SteamRoot:       GetDefaultSteamRoot(),
		DescriptorDir:   GetDefaultDescriptorDir(),
		IconCache:       filepath.Join("appcache", "librarycache"),
		ExcludeKeywords: append([]string(nil), DefaultExcludeKeywords...),
		ExcludeIds:      []string{},
		Finder: CommandSpec{
			Command: "fzf",
			Args:    []string{"--prompt", "game> ", "--height", "40%", "--reverse"},
		},
		Launcher: CommandSpec{
			Command: launcher,
			Args:    launcherArgs,
		},
		UriScheme: "steam",
	}
}

// commandPresence records which CommandSpec keys a settings file sets.
type commandPresence struct {
	Command *string   `yaml:"command"`
	Args    *[]string `yaml:"args"`
}

type settingsPresence struct {
	Finder   *commandPresence `yaml:"finder"`
	Launcher *commandPresence `yaml:"launcher"`
}

// resetDefaultArgs drops the default args of a command the file replaced
// without giving args of its own. fzf flags mean nothing to sk.
func resetDefaultArgs(spec *CommandSpec, present *commandPresence) {
	if present != nil && present.Command != nil && present.Args == nil {
		spec.Args = nil
	}
}

// LoadUserSettings reads settings from path. A missing file yields the defaults.
func LoadUserSettings(path string) (*UserSettings, error) {
	settings := DefaultUserSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Debugw("no settings file, using defaults", "path", path)
			return settings, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid settings file %v: %w", path, err)
	}

	var present settingsPresence
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("invalid settings file %v: %w", path, err)
	}
	resetDefaultArgs(&settings.Finder, present.Finder)
	resetDefaultArgs(&settings.Launcher, present.Launcher)

	settings.SteamRoot = ExpandPath(settings.SteamRoot)
	settings.DescriptorDir = ExpandPath(settings.DescriptorDir)
	settings.IconCache = ExpandPath(settings.IconCache)
	return settings, nil
}

// LoadOrCreateUserSettings is LoadUserSettings that also writes the defaults
// to path on first run. Failing to write is logged, not returned.
func LoadOrCreateUserSettings(path string) (*UserSettings, error) {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return LoadUserSettings(path)
	}

	settings := DefaultUserSettings()
	if err := settings.Save(path); err != nil {
		Logger.Warnw("cannot write default settings", "path", path, "error", err)
	} else {
		Logger.Infow("wrote default settings", "path", path)
	}
	return settings, nil
}

func (s *UserSettings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyOptions lets command line flags win over the settings file.
func (s *UserSettings) ApplyOptions(ops *Options) {
	if ops.SteamRoot != "" {
		s.SteamRoot = ExpandPath(ops.SteamRoot)
	}

	if ops.DescriptorDir != "" {
		s.DescriptorDir = ExpandPath(ops.DescriptorDir)
	}

	if ops.BuiltinSelector {
		s.BuiltinSelector = true
	}
}

// IconCacheDir resolves IconCache against the steam root unless it is absolute.
func (s *UserSettings) IconCacheDir() string {
	if filepath.IsAbs(s.IconCache) {
		return s.IconCache
	}
	return filepath.Join(s.SteamRoot, s.IconCache)
}

// ExpandPath expands a leading ~ and any $VAR references.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		homedir, err := os.UserHomeDir()
		if err == nil {
			path = homedir + path[1:]
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}
