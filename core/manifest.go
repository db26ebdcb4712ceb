package core

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var manifestFilePattern = regexp.MustCompile(`^appmanifest_(\d+)\.acf$`)
var manifestNameLine = regexp.MustCompile(`(?i)^\s*"name"\s+"(.*)"\s*$`)

// Entry is one installed title that survived scanning.
type Entry struct {
	Id       string
	Name     string
	Manifest string
	Library  string
}

func isTrademarkGlyph(r rune) bool {
	switch r {
	case '™', '®', '©', '℠':
		return true
	}
	return false
}

// CleanName strips trademark glyphs and normalises whitespace.
func CleanName(name string) string {
	stripped, _, _ := transform.String(runes.Remove(runes.Predicate(isTrademarkGlyph)), name)
	return strings.Join(strings.Fields(stripped), " ")
}

// ManifestId extracts the app id from an appmanifest file name.
func ManifestId(fileName string) (string, bool) {
	match := manifestFilePattern.FindStringSubmatch(filepath.Base(fileName))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ParseManifestName returns the raw display name from manifest content.
// Manifests the vdf parser rejects are searched line by line instead.
func ParseManifestName(content []byte) string {
	manifest := AppManifest{}
	err := DecodeVdf(bytes.NewReader(content), &manifest)
	if err == nil && manifest.AppState.Name != "" {
		return manifest.AppState.Name
	}

	if err != nil {
		Logger.Debugw("vdf parse failed, falling back to line scan", "error", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		match := manifestNameLine.FindStringSubmatch(scanner.Text())
		if match != nil {
			return match[1]
		}
	}

	return ""
}

// ScanLibrary reads every appmanifest under library/steamapps. Problems
// with individual manifests are logged and the manifest skipped.
func ScanLibrary(fs LocalFs, library string) []Entry {
	steamApps := filepath.Join(library, "steamapps")
	dirEntries, err := fs.ReadDir(steamApps)
	if err != nil {
		Logger.Warnw("cannot read library", "path", steamApps, "error", err)
		return nil
	}

	result := []Entry{}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasPrefix(dirEntry.Name(), "appmanifest_") {
			continue
		}

		manifestPath := filepath.Join(steamApps, dirEntry.Name())
		id, ok := ManifestId(dirEntry.Name())
		if !ok {
			Logger.Warnw("manifest file name has no app id", "path", manifestPath)
			continue
		}

		content, err := fs.ReadFile(manifestPath)
		if err != nil {
			Logger.Warnw("cannot read manifest", "path", manifestPath, "error", err)
			continue
		}

		name := CleanName(ParseManifestName(content))
		if name == "" {
			Logger.Warnw("manifest has no name", "path", manifestPath)
			continue
		}

		result = append(result, Entry{
			Id:       id,
			Name:     name,
			Manifest: manifestPath,
			Library:  library,
		})
	}

	if len(result) == 0 {
		Logger.Warnw("no app manifests found", "path", steamApps)
	}

	return result
}
