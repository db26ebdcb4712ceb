package core

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
)

const LibraryFoldersFile = "libraryfolders.vdf"

type libraryEntry struct {
	index int
	path  string
}

// EnumerateLibraries returns root followed by every library listed in
// root/steamapps/libraryfolders.vdf. Paths are not deduplicated.
func EnumerateLibraries(fs LocalFs, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("steam root %v is not accessible: %w", root, ErrSteamRootMissing)
	}

	result := []string{root}

	companion := filepath.Join(root, "steamapps", LibraryFoldersFile)
	content, err := fs.Open(companion)
	if err != nil {
		Logger.Warnw("no library folder list, scanning steam root only", "path", companion, "error", err)
		return result, nil
	}
	defer content.Close()

	vdfMap, err := ParseVdf(content)
	if err != nil {
		Logger.Warnw("failed to parse library folder list, scanning steam root only", "path", companion, "error", err)
		return result, nil
	}

	folders, ok := lookupKey(vdfMap, "libraryfolders")
	if !ok {
		Logger.Warnw("library folder list has no libraryfolders section", "path", companion)
		return result, nil
	}

	folderMap, ok := folders.(map[string]interface{})
	if !ok {
		return result, nil
	}

	entries := []libraryEntry{}
	for key, value := range folderMap {
		index, err := strconv.Atoi(key)
		if err != nil {
			// TimeNextStatsReport, ContentStatsID and friends
			continue
		}

		path := libraryPath(value)
		if path == "" {
			Logger.Debugw("library entry without a path", "key", key)
			continue
		}

		entries = append(entries, libraryEntry{index: index, path: path})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].index < entries[j].index
	})

	for _, entry := range entries {
		result = append(result, entry.path)
	}

	Logger.Debugw("enumerated libraries", "libraries", result)
	return result, nil
}

// libraryPath handles both the legacy `"1" "/path"` layout and the
// current `"0" { "path" "/path" }` one.
func libraryPath(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		path, ok := lookupKey(v, "path")
		if !ok {
			return ""
		}
		s, _ := path.(string)
		return s
	}

	return ""
}
