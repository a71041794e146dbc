package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// mappingFile is the on-disk shape of a name-mapping configuration: one
// table of canonical property name → comma-separated regex fragments.
//
//	[properties]
//	"version.wildfly" = 'version\.org\.wildfly.* , version\.org\.jboss.*'
//
// or, as YAML:
//
//	properties:
//	  version.wildfly: 'version\.org\.wildfly.*'
type mappingFile struct {
	Properties map[string]string `toml:"properties" yaml:"properties"`
}

// loadMapping reads a name-mapping file, picking the parser by extension
// (.toml, .yaml, .yml). An empty path yields a nil mapping, which is valid:
// candidate names then pass through untouched.
func loadMapping(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f mappingFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse mapping %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse mapping %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported mapping format %q (use .toml, .yaml or .yml)", ext)
	}
	return f.Properties, nil
}
