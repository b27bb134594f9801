// Package layout reads and writes layout files: named ring records kept in
// YAML so a dashboard can be restored the way it was left.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/ring"
)

// CurrentVersion is the layout file schema version.
const CurrentVersion = 1

// File is the on-disk layout document.
type File struct {
	Version int                    `yaml:"version"`
	Rings   map[string]ring.Record `yaml:"rings"`
}

// document is File as read from disk. Ring entries stay raw so one bad
// entry can't take the rest of the file down with it.
type document struct {
	Version int                  `yaml:"version"`
	Rings   map[string]yaml.Node `yaml:"rings"`
}

// New returns an empty layout at the current version.
func New() *File {
	return &File{
		Version: CurrentVersion,
		Rings:   make(map[string]ring.Record),
	}
}

// Load reads the layout at path. A missing file is an empty layout.
// Ring entries that aren't mappings load as empty records, and malformed
// values inside an entry degrade to defaults when decoded. Only a file that
// is not a YAML mapping is an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrLayout,
			"Can't read layout file "+path,
			"Check file permissions")
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLayout,
			"Layout file "+path+" isn't valid",
			"Fix the YAML or delete the file to start over")
	}

	f := New()
	f.Version = doc.Version
	for name, node := range doc.Rings {
		f.Rings[name] = decodeEntry(name, node)
	}

	if f.Version > CurrentVersion {
		return nil, errors.New(errors.ErrLayout,
			fmt.Sprintf("Layout file %s is version %d, newer than this orbit understands (%d)", path, f.Version, CurrentVersion),
			"Upgrade orbit")
	}
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	return f, nil
}

// decodeEntry turns one raw ring entry into a record. Anything that isn't a
// mapping becomes an empty record, which decodes to a default ring.
func decodeEntry(name string, node yaml.Node) ring.Record {
	rec := ring.Record{}
	if node.Kind != yaml.MappingNode {
		logger.Default().Debug("layout: ring %q is not a mapping (line %d), using defaults", name, node.Line)
		return rec
	}
	if err := node.Decode(&rec); err != nil {
		logger.Default().Debug("layout: ring %q: %v, using defaults", name, err)
		return ring.Record{}
	}
	return rec
}

// Save writes f to path, creating parent directories. The file is written
// to a sibling temp file and renamed into place.
func Save(path string, f *File) error {
	if f.Version == 0 {
		f.Version = CurrentVersion
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrLayout, "Can't encode layout", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrLayout,
			"Can't create layout directory "+filepath.Dir(path),
			"Check directory permissions")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".layout-*.yaml")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrLayout, "Can't write layout file "+path, "Check directory permissions")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapWithCode(err, errors.ErrLayout, "Can't write layout file "+path, "")
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrLayout, "Can't write layout file "+path, "")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapWithCode(err, errors.ErrLayout, "Can't write layout file "+path, "")
	}
	return nil
}

// Names returns the ring names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Rings))
	for name := range f.Rings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Put stores r's coded state under name.
func (f *File) Put(name string, r *ring.Ring) {
	if f.Rings == nil {
		f.Rings = make(map[string]ring.Record)
	}
	f.Rings[name] = ring.Encode(r)
}

// Ring decodes the ring stored under name. ok is false when there is none,
// in which case a default ring is returned.
func (f *File) Ring(name string, opts ...ring.Option) (r *ring.Ring, ok bool) {
	rec, ok := f.Rings[name]
	if !ok {
		return ring.New(opts...), false
	}
	return ring.Decode(rec, opts...), true
}

// Remove deletes the ring stored under name.
func (f *File) Remove(name string) {
	delete(f.Rings, name)
}
