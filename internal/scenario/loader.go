package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed samples/*.yaml
var samplesFS embed.FS

// Loader reads scenario files from a directory tree.
type Loader struct {
	Root string

	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
// A nil logger uses the default logger.
func NewLoader(root string, logger *log.Logger) *Loader {
	return NewFSLoader(root, os.DirFS(root), logger)
}

// NewFSLoader creates a loader over any file system; root is only used
// in messages.
func NewFSLoader(root string, fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{Root: root, fsys: fsys, logger: logger}
}

// Samples returns a loader over the scenarios shipped with the binary.
func Samples(logger *log.Logger) *Loader {
	sub, err := fs.Sub(samplesFS, "samples")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return NewFSLoader("embedded", sub, logger)
}

// LoadAll recursively scans and loads all scenario files.
// Invalid files are logged and skipped. Returns scenarios sorted by ID.
func (l *Loader) LoadAll() ([]Scenario, error) {
	var scenarios []Scenario

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		s, err := l.LoadFile(p)
		if err != nil {
			l.logger.Warn("skipping scenario", "path", p, "error", err)
			return nil
		}
		scenarios = append(scenarios, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ID < scenarios[j].ID
	})
	return scenarios, nil
}

// LoadFile loads a single scenario file, path relative to the root.
func (l *Loader) LoadFile(p string) (Scenario, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	if !isSupportedExtension(ext) {
		return Scenario{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	s, err := ParseYAML(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	s.FilePath = p
	return s, nil
}

// LoadByID loads a specific scenario by ID.
func (l *Loader) LoadByID(id string) (Scenario, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return Scenario{}, err
	}
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all scenario IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(scenarios))
	for i, s := range scenarios {
		ids[i] = s.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
