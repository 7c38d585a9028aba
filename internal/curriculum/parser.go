package curriculum

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/harrison/algo/internal/models"
)

// Format represents the format of a curriculum manifest
type Format int

const (
	// FormatUnknown represents an unknown or unsupported manifest format
	FormatUnknown Format = iota
	// FormatTOML represents a TOML (.toml) manifest, the original info.toml layout
	FormatTOML
	// FormatYAML represents a YAML (.yaml, .yml) manifest
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat detects the manifest format based on file extension
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Parser decodes a manifest into an ordered list of exercises
type Parser interface {
	Parse(r io.Reader) ([]models.Exercise, error)
}

// NewParser creates a parser for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatTOML:
		return tomlParser{}, nil
	case FormatYAML:
		return yamlParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// entry is the on-disk shape of one exercise in either format
type entry struct {
	Name string `toml:"name" yaml:"name"`
	Path string `toml:"path" yaml:"path"`
	Mode string `toml:"mode" yaml:"mode"`
	Hint string `toml:"hint" yaml:"hint"`
}

// manifest accepts both the original "algorithms" table name and "exercises"
type manifest struct {
	Algorithms []entry `toml:"algorithms" yaml:"algorithms"`
	Exercises  []entry `toml:"exercises" yaml:"exercises"`
}

func (m manifest) entries() []entry {
	return append(append([]entry{}, m.Algorithms...), m.Exercises...)
}

type tomlParser struct{}

func (tomlParser) Parse(r io.Reader) ([]models.Exercise, error) {
	var m manifest
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return toExercises(m.entries())
}

type yamlParser struct{}

func (yamlParser) Parse(r io.Reader) ([]models.Exercise, error) {
	var m manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return toExercises(m.entries())
}

// toExercises validates entries and enforces unique names
func toExercises(entries []entry) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0, len(entries))
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		mode, err := models.ParseMode(e.Mode)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, e.Name, err)
		}
		ex := models.Exercise{
			Name: strings.TrimSpace(e.Name),
			Path: filepath.FromSlash(strings.TrimSpace(e.Path)),
			Mode: mode,
			Hint: e.Hint,
		}
		if err := ex.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if prev, dup := seen[ex.Name]; dup {
			return nil, fmt.Errorf("entry %d: duplicate exercise name %q (first defined in entry %d)", i+1, ex.Name, prev+1)
		}
		seen[ex.Name] = i
		exercises = append(exercises, ex)
	}

	return exercises, nil
}
