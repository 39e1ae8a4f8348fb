package archdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Load reads the file at path and parses it into a generic nested value.
// Format is chosen by extension; files without a recognized extension are
// tried as JSON first, then YAML.
func Load(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, b)
}

// Parse decodes b according to the extension of name.
func Parse(name string, b []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", name, err)
		}
		return doc, nil
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", name, err)
		}
		return doc, nil
	default:
		if err := json.Unmarshal(b, &doc); err == nil {
			return doc, nil
		}
		if err := yaml.Unmarshal(b, &doc); err == nil {
			return doc, nil
		}
		return nil, fmt.Errorf("cannot parse %s: use .json or .yaml format", name)
	}
}
