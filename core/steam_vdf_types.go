package core

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/andygrunwald/vdf"
)

// AppManifest mirrors the fields of appmanifest_<id>.acf we care about.
type AppManifest struct {
	AppState struct {
		AppId      string `json:"appid"`
		Name       string `json:"name"`
		InstallDir string `json:"installdir"`
	} `json:"AppState"`
}

// ParseVdf parses a single VDF document into nested maps whose leaves are strings.
func ParseVdf(r io.Reader) (map[string]interface{}, error) {
	parser := vdf.NewParser(r)
	return parser.Parse()
}

// DecodeVdf parses a VDF document and decodes it into out through its JSON shape.
func DecodeVdf(r io.Reader, out any) error {
	vdfMap, err := ParseVdf(r)
	if err != nil {
		return err
	}

	jsonStr, err := json.Marshal(vdfMap)
	if err != nil {
		return err
	}

	return json.Unmarshal(jsonStr, out)
}

// lookupKey finds key in m ignoring case, Steam is not consistent about it.
func lookupKey(m map[string]interface{}, key string) (interface{}, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}

	return nil, false
}
