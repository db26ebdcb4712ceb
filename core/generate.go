package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

const iconFileSuffix = "_library_600x900.jpg"

type GenerateResult struct {
	Libraries []string
	Written   []string
	Excluded  []Entry
	Pruned    []string
}

// ResolveIcon returns the library capsule image for id. The flat
// <id>_library_600x900.jpg name is preferred; newer clients nest it as
// <id>/library_600x900.jpg. A missing icon is only a warning.
func ResolveIcon(fs LocalFs, iconCacheDir string, id string) string {
	conventional := filepath.Join(iconCacheDir, id+iconFileSuffix)
	if FileExists(fs, conventional) {
		return conventional
	}

	nested := filepath.Join(iconCacheDir, id, strings.TrimPrefix(iconFileSuffix, "_"))
	if FileExists(fs, nested) {
		return nested
	}

	Logger.Warnw("icon not found", "id", id, "path", conventional)
	return conventional
}

// GenerateDescriptors scans every library under the configured steam root
// and writes one descriptor per game into the descriptor dir. With prune set,
// descriptors this run did not write are removed afterwards.
func GenerateDescriptors(fs LocalFs, settings *UserSettings, prune bool) (*GenerateResult, error) {
	libraries, err := EnumerateLibraries(fs, settings.SteamRoot)
	if err != nil {
		return nil, err
	}

	if err := fs.MkdirAll(settings.DescriptorDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create descriptor directory %v: %w", settings.DescriptorDir, err)
	}

	result := &GenerateResult{
		Libraries: libraries,
		Written:   []string{},
		Excluded:  []Entry{},
		Pruned:    []string{},
	}

	filter := NewExclusionFilter(settings.ExcludeKeywords, settings.ExcludeIds)
	iconCacheDir := settings.IconCacheDir()
	written := make(map[string]struct{})

	for _, library := range libraries {
		Logger.Infow("scanning library", "path", library)
		for _, entry := range ScanLibrary(fs, library) {
			if excluded, rule := filter.Excludes(entry); excluded {
				Logger.Infow("skipping non-game entry", "id", entry.Id, "name", entry.Name, "rule", rule)
				result.Excluded = append(result.Excluded, entry)
				continue
			}

			descriptor := &Descriptor{
				Id:   entry.Id,
				Name: entry.Name,
				Icon: ResolveIcon(fs, iconCacheDir, entry.Id),
			}

			path, err := WriteDescriptor(fs, settings.DescriptorDir, descriptor)
			if err != nil {
				return nil, fmt.Errorf("cannot write descriptor for %v: %w", entry.Name, err)
			}

			if _, dup := written[path]; dup {
				continue
			}
			written[path] = struct{}{}
			result.Written = append(result.Written, path)
			Logger.Debugw("wrote descriptor", "path", path, "id", entry.Id)
		}
	}

	if prune {
		pruned, err := pruneDescriptors(fs, settings.DescriptorDir, written)
		if err != nil {
			return nil, err
		}
		result.Pruned = pruned
	}

	Logger.Infow("generation complete", "written", len(result.Written), "excluded", len(result.Excluded), "pruned", len(result.Pruned))
	return result, nil
}

func pruneDescriptors(fs LocalFs, dir string, keep map[string]struct{}) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	pruned := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != DescriptorExt {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if _, ok := keep[path]; ok {
			continue
		}

		if err := fs.Remove(path); err != nil {
			return nil, fmt.Errorf("cannot prune %v: %w", path, err)
		}
		Logger.Infow("pruned stale descriptor", "path", path)
		pruned = append(pruned, path)
	}

	return pruned, nil
}
