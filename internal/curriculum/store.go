// Package curriculum holds the ordered list of exercises loaded from the
// manifest (info.toml or info.yaml) at the root of a curriculum directory.
//
// Curriculum order is fixed at load time. It is both the verification order
// and the resumption order used by watch mode.
package curriculum

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/algo/internal/models"
)

// DefaultManifests lists the manifest names probed, in order, when none is configured
var DefaultManifests = []string{"info.toml", "info.yaml", "info.yml"}

// Curriculum is the exercise descriptor store
type Curriculum struct {
	root         string
	manifestPath string
	exercises    []models.Exercise
	absPaths     []string
	byName       map[string]int
}

// Load reads the manifest in dir. An empty manifest argument probes DefaultManifests.
// A relative manifest argument is resolved against dir.
func Load(dir, manifest string) (*Curriculum, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, &ManifestError{Path: dir, Err: err}
	}

	path, err := locateManifest(root, manifest)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(path)
	parser, err := NewParser(format)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	defer file.Close()

	exercises, err := parser.Parse(file)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}

	return New(root, path, exercises), nil
}

// New builds a curriculum from already parsed exercises.
// Names must be unique; Load guarantees this for manifests.
func New(root, manifestPath string, exercises []models.Exercise) *Curriculum {
	c := &Curriculum{
		root:         root,
		manifestPath: manifestPath,
		exercises:    append([]models.Exercise(nil), exercises...),
		absPaths:     make([]string, len(exercises)),
		byName:       make(map[string]int, len(exercises)),
	}
	for i, ex := range c.exercises {
		c.byName[ex.Name] = i
		c.absPaths[i] = c.resolve(ex.Path)
	}
	return c
}

func locateManifest(root, manifest string) (string, error) {
	if manifest != "" {
		path := manifest
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", &ManifestError{Path: path, Err: ErrManifestMissing}
			}
			return "", &ManifestError{Path: path, Err: err}
		}
		return path, nil
	}

	for _, name := range DefaultManifests {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &ManifestError{Path: root, Err: ErrManifestMissing}
}

// Root returns the absolute curriculum directory
func (c *Curriculum) Root() string {
	return c.root
}

// ManifestPath returns the manifest the curriculum was loaded from
func (c *Curriculum) ManifestPath() string {
	return c.manifestPath
}

// Len returns the number of exercises
func (c *Curriculum) Len() int {
	return len(c.exercises)
}

// Exercises returns the full ordered curriculum
func (c *Curriculum) Exercises() []models.Exercise {
	return c.From(0)
}

// From returns the exercises starting at position i, in curriculum order.
// Out-of-range positions yield an empty slice.
func (c *Curriculum) From(i int) []models.Exercise {
	if i < 0 || i >= len(c.exercises) {
		return []models.Exercise{}
	}
	return append([]models.Exercise(nil), c.exercises[i:]...)
}

// Find returns the exercise with the given name
func (c *Curriculum) Find(name string) (models.Exercise, error) {
	i, ok := c.byName[name]
	if !ok {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.exercises[i], nil
}

// AbsPath returns the absolute source path of an exercise
func (c *Curriculum) AbsPath(ex models.Exercise) string {
	if i, ok := c.byName[ex.Name]; ok {
		return c.absPaths[i]
	}
	return c.resolve(ex.Path)
}

// IndexOfPath returns the position of the first exercise whose source file is path,
// or -1 when no exercise matches.
func (c *Curriculum) IndexOfPath(path string) int {
	target := c.resolve(path)
	for i, p := range c.absPaths {
		if p == target {
			return i
		}
	}

	// Symlinked temp dirs (macOS /var -> /private/var) defeat the plain comparison
	realTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		return -1
	}
	for i, p := range c.absPaths {
		if realPath, err := filepath.EvalSymlinks(p); err == nil && realPath == realTarget {
			return i
		}
	}
	return -1
}

func (c *Curriculum) resolve(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.root, path)
	}
	return filepath.Clean(path)
}
