package core

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type steamFixture struct {
	t    *testing.T
	root string
}

func newSteamFixture(t *testing.T) *steamFixture {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Steam")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "steamapps"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "appcache", "librarycache"), 0755))
	return &steamFixture{t: t, root: root}
}

func (f *steamFixture) writeFile(path string, content string) string {
	f.t.Helper()
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func manifestContent(id string, name string) string {
	return fmt.Sprintf("\"AppState\"\n{\n\t\"appid\"\t\t\"%v\"\n\t\"Universe\"\t\t\"1\"\n\t\"name\"\t\t\"%v\"\n\t\"StateFlags\"\t\t\"4\"\n\t\"installdir\"\t\t\"%v\"\n}\n", id, name, name)
}

func (f *steamFixture) addManifest(library string, id string, name string) string {
	path := filepath.Join(library, "steamapps", fmt.Sprintf("appmanifest_%v.acf", id))
	return f.writeFile(path, manifestContent(id, name))
}

func (f *steamFixture) addIcon(id string) string {
	return f.writeFile(filepath.Join(f.root, "appcache", "librarycache", id+"_library_600x900.jpg"), "jpg")
}

func (f *steamFixture) writeLibraryFolders(content string) {
	f.writeFile(filepath.Join(f.root, "steamapps", LibraryFoldersFile), content)
}

func (f *steamFixture) settings() *UserSettings {
	settings := DefaultUserSettings()
	settings.SteamRoot = f.root
	settings.DescriptorDir = filepath.Join(filepath.Dir(f.root), "games")
	return settings
}
