package core

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

const DescriptorExt = ".env"

const (
	keyGameId   = "GAME_ID"
	keyGameName = "GAME_NAME"
	keyGameIcon = "GAME_ICON"
)

// Descriptor is the three-field file written per game and read back by the launcher.
type Descriptor struct {
	Id   string
	Name string
	Icon string
}

var shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// DescriptorFileName derives a file name from the display name, falling
// back to the app id when nothing printable is left.
func DescriptorFileName(name string, id string) string {
	var b strings.Builder
	pendingUnderscore := false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r) || r == '_':
			pendingUnderscore = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.':
			if pendingUnderscore {
				b.WriteByte('_')
				pendingUnderscore = false
			}
			b.WriteRune(r)
		}
	}

	stem := strings.Trim(b.String(), "_.")
	if stem == "" {
		stem = id
	}

	return stem + DescriptorExt
}

// Encode renders d as shell-sourceable KEY="value" lines.
func (d *Descriptor) Encode() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%v=\"%v\"\n", keyGameId, shellEscaper.Replace(d.Id))
	fmt.Fprintf(&b, "%v=\"%v\"\n", keyGameName, shellEscaper.Replace(d.Name))
	fmt.Fprintf(&b, "%v=\"%v\"\n", keyGameIcon, shellEscaper.Replace(d.Icon))
	return b.Bytes()
}

func DecodeDescriptor(content []byte) (*Descriptor, error) {
	result := &Descriptor{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")
		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %v: expected KEY=\"value\"", lineNo)
		}

		value, err := unquoteValue(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNo, err)
		}

		switch strings.TrimSpace(key) {
		case keyGameId:
			result.Id = value
		case keyGameName:
			result.Name = value
		case keyGameIcon:
			result.Icon = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if result.Id == "" {
		return nil, fmt.Errorf("descriptor has no %v", keyGameId)
	}

	return result, nil
}

func unquoteValue(raw string) (string, error) {
	if !strings.HasPrefix(raw, `"`) {
		return raw, nil
	}

	var b strings.Builder
	escaped := false
	for i, r := range raw[1:] {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			if rest := strings.TrimSpace(raw[i+2:]); rest != "" {
				return "", fmt.Errorf("unexpected %q after closing quote", rest)
			}
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}

	return "", fmt.Errorf("unterminated quote in %v", raw)
}

// WriteDescriptor writes d into dir and returns the path written. An
// existing file of the same name is overwritten.
func WriteDescriptor(fs LocalFs, dir string, d *Descriptor) (string, error) {
	path := filepath.Join(dir, DescriptorFileName(d.Name, d.Id))
	if err := fs.WriteFile(path, d.Encode(), 0644); err != nil {
		return "", err
	}

	return path, nil
}

// ListDescriptors returns the sorted descriptor names (file stems) in dir.
func ListDescriptors(fs LocalFs, dir string) ([]string, error) {
	info, err := fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("descriptor directory %v not found: %w", dir, ErrDescriptorDirMissing)
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != DescriptorExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), DescriptorExt))
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no game descriptors found in %v: %w", dir, ErrNoDescriptors)
	}

	sort.Strings(names)
	return names, nil
}

func LoadDescriptor(fs LocalFs, dir string, name string) (*Descriptor, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("no descriptor for %q: %w", name, ErrSelectionNotFound)
	}

	path := filepath.Join(dir, name+DescriptorExt)
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no descriptor for %v: %w", name, ErrSelectionNotFound)
	}

	d, err := DecodeDescriptor(content)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor %v: %w", path, err)
	}

	return d, nil
}
