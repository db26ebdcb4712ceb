package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDescriptorDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	result := make(map[string]string)
	for _, entry := range entries {
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		result[entry.Name()] = string(content)
	}
	return result
}

func TestGenerateDescriptors_TeamFortress(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "440", "Team Fortress™ 2")
	icon := f.addIcon("440")
	settings := f.settings()

	result, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	require.Len(t, result.Written, 1)

	path := filepath.Join(settings.DescriptorDir, "Team_Fortress_2.env")
	assert.Equal(t, path, result.Written[0])

	d, err := LoadDescriptor(GetDefaultLocalFs(), settings.DescriptorDir, "Team_Fortress_2")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Id: "440", Name: "Team Fortress 2", Icon: icon}, *d)
}

func TestGenerateDescriptors_SkipsExcluded(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "620", "Portal 2")
	f.addManifest(f.root, "323180", "Portal 2 Soundtrack")
	f.addManifest(f.root, "1493710", "Proton Experimental")
	settings := f.settings()

	result, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	assert.Len(t, result.Written, 1)
	assert.Len(t, result.Excluded, 2)

	files := readDescriptorDir(t, settings.DescriptorDir)
	assert.Contains(t, files, "Portal_2.env")
	assert.NotContains(t, files, "Portal_2_Soundtrack.env")
	assert.NotContains(t, files, "Proton_Experimental.env")
}

func TestGenerateDescriptors_MissingIconStillWritten(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "570", "Dota 2")
	settings := f.settings()

	_, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)

	d, err := LoadDescriptor(GetDefaultLocalFs(), settings.DescriptorDir, "Dota_2")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "appcache", "librarycache", "570_library_600x900.jpg"), d.Icon)
}

func TestGenerateDescriptors_NestedIcon(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "570", "Dota 2")
	nested := f.writeFile(filepath.Join(f.root, "appcache", "librarycache", "570", "library_600x900.jpg"), "jpg")
	settings := f.settings()

	_, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)

	d, err := LoadDescriptor(GetDefaultLocalFs(), settings.DescriptorDir, "Dota_2")
	require.NoError(t, err)
	assert.Equal(t, nested, d.Icon)
}

func TestGenerateDescriptors_ExtraLibraries(t *testing.T) {
	f := newSteamFixture(t)
	second := filepath.Join(t.TempDir(), "SteamLibrary")
	f.addManifest(f.root, "440", "Team Fortress 2")
	f.addManifest(second, "1091500", "Cyberpunk 2077")
	f.writeLibraryFolders("\"libraryfolders\"\n{\n\t\"1\"\n\t{\n\t\t\"path\"\t\t\"" + second + "\"\n\t}\n}\n")
	settings := f.settings()

	result, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	assert.Equal(t, []string{f.root, second}, result.Libraries)

	files := readDescriptorDir(t, settings.DescriptorDir)
	assert.Contains(t, files, "Team_Fortress_2.env")
	assert.Contains(t, files, "Cyberpunk_2077.env")
}

func TestGenerateDescriptors_Idempotent(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "440", "Team Fortress™ 2")
	f.addManifest(f.root, "620", "Portal 2")
	f.addIcon("620")
	settings := f.settings()

	_, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	first := readDescriptorDir(t, settings.DescriptorDir)

	_, err = GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	second := readDescriptorDir(t, settings.DescriptorDir)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("descriptor set changed between runs (-first +second):\n%s", diff)
	}
}

func TestGenerateDescriptors_Prune(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "620", "Portal 2")
	settings := f.settings()
	require.NoError(t, os.MkdirAll(settings.DescriptorDir, 0755))
	stale := filepath.Join(settings.DescriptorDir, "Uninstalled_Game.env")
	require.NoError(t, os.WriteFile(stale, []byte("GAME_ID=\"1\"\n"), 0644))
	other := filepath.Join(settings.DescriptorDir, "README.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0644))

	result, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	assert.Empty(t, result.Pruned)
	assert.FileExists(t, stale)

	result, err = GenerateDescriptors(GetDefaultLocalFs(), settings, true)
	require.NoError(t, err)
	assert.Equal(t, []string{stale}, result.Pruned)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, other)
	assert.FileExists(t, filepath.Join(settings.DescriptorDir, "Portal_2.env"))
}

func TestGenerateDescriptors_MissingRoot(t *testing.T) {
	settings := DefaultUserSettings()
	settings.SteamRoot = filepath.Join(t.TempDir(), "missing")
	settings.DescriptorDir = filepath.Join(t.TempDir(), "games")

	_, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	assert.ErrorIs(t, err, ErrSteamRootMissing)
	assert.NoDirExists(t, settings.DescriptorDir)
}

func TestGenerateDescriptors_CustomKeywords(t *testing.T) {
	f := newSteamFixture(t)
	f.addManifest(f.root, "620", "Portal 2")
	f.addManifest(f.root, "400", "Portal")
	settings := f.settings()
	settings.ExcludeKeywords = []string{"2"}

	result, err := GenerateDescriptors(GetDefaultLocalFs(), settings, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(settings.DescriptorDir, "Portal.env")}, result.Written)
}
