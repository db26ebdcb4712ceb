package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Team Fortress 2", CleanName("Team Fortress™ 2"))
	assert.Equal(t, "Tom Clancy's Rainbow Six Siege", CleanName("Tom Clancy's Rainbow Six® Siege"))
	assert.Equal(t, "Foo Bar", CleanName("  Foo©   Bar℠ "))
	assert.Equal(t, "", CleanName("™"))
}

func TestManifestId(t *testing.T) {
	id, ok := ManifestId("appmanifest_440.acf")
	assert.True(t, ok)
	assert.Equal(t, "440", id)

	id, ok = ManifestId("/lib/steamapps/appmanifest_1172470.acf")
	assert.True(t, ok)
	assert.Equal(t, "1172470", id)

	_, ok = ManifestId("appmanifest_abc.acf")
	assert.False(t, ok)

	_, ok = ManifestId("appmanifest_440.acf.bak")
	assert.False(t, ok)
}

func TestParseManifestName(t *testing.T) {
	assert.Equal(t, "Team Fortress™ 2", ParseManifestName([]byte(manifestContent("440", "Team Fortress™ 2"))))

	// not valid vdf, found by the line scan
	loose := "{\n\t\"appid\"\t\"10\"\n\t\"name\"\t\t\"Loose Game\"\n}\n"
	assert.Equal(t, "Loose Game", ParseManifestName([]byte(loose)))

	assert.Equal(t, "", ParseManifestName([]byte("\"AppState\"\n{\n\t\"appid\"\t\"10\"\n}\n")))
}

func TestScanLibrary(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "440", "Team Fortress™ 2")
	f.addManifest(f.root, "620", "Portal 2")
	f.writeFile(filepath.Join(f.root, "steamapps", "appmanifest_999.acf"), "\"AppState\"\n{\n}\n")
	f.writeFile(filepath.Join(f.root, "steamapps", "appmanifest_bad.acf"), manifestContent("1", "Bad"))
	f.writeFile(filepath.Join(f.root, "steamapps", "libraryfolders.vdf"), "\"libraryfolders\"\n{\n}\n")

	entries := ScanLibrary(GetDefaultLocalFs(), f.root)
	require.Len(t, entries, 2)

	assert.Equal(t, "440", entries[0].Id)
	assert.Equal(t, "Team Fortress 2", entries[0].Name)
	assert.Equal(t, f.root, entries[0].Library)
	assert.Equal(t, filepath.Join(f.root, "steamapps", "appmanifest_440.acf"), entries[0].Manifest)

	assert.Equal(t, "620", entries[1].Id)
	assert.Equal(t, "Portal 2", entries[1].Name)
}

func TestScanLibrary_Missing(t *testing.T) {
	entries := ScanLibrary(GetDefaultLocalFs(), filepath.Join(t.TempDir(), "nowhere"))
	assert.Empty(t, entries)
}
