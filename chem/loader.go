package chem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of an element table:
//
//	# TOML
//	[elements]
//	H = 1.008
//
//	# YAML
//	elements:
//	  H: 1.008
type tableFile struct {
	Elements map[string]float64 `toml:"elements" yaml:"elements"`
}

// LoadTable reads an element table from path. The format follows the file
// extension: .toml, or .yaml/.yml. When base is non-nil the file entries
// override and extend base; otherwise the file alone makes up the table.
func LoadTable(path string, base *ElementTable) (*ElementTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chem: read element table: %w", err)
	}

	var f tableFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err = toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidTable, ext)
	}
	if len(f.Elements) == 0 {
		return nil, fmt.Errorf("%w: %s defines no elements", ErrInvalidTable, path)
	}

	if base != nil {
		return base.Extend(f.Elements)
	}

	return NewTable(f.Elements)
}
