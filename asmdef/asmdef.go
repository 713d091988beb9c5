package asmdef

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Extension is the assembly definition file extension.
const Extension = ".asmdef"

// File is one loaded .asmdef document. Edits operate on the raw bytes so
// unrelated fields keep their formatting.
type File struct {
	path string
	raw  []byte
}

// Load reads and validates the .asmdef file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates data as an .asmdef document associated with path.
func Parse(path string, data []byte) (*File, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: not valid JSON", path)
	}
	if !gjson.GetBytes(data, "name").Exists() {
		return nil, fmt.Errorf("parse %s: missing assembly name", path)
	}
	return &File{path: path, raw: data}, nil
}

// Path returns the file's path on disk.
func (f *File) Path() string { return f.path }

// Bytes returns the current document bytes.
func (f *File) Bytes() []byte { return f.raw }

// Name returns the assembly name.
func (f *File) Name() string {
	return gjson.GetBytes(f.raw, "name").String()
}

// References returns the declared assembly references in document order.
func (f *File) References() []string {
	var out []string
	for _, r := range gjson.GetBytes(f.raw, "references").Array() {
		out = append(out, r.String())
	}
	return out
}

// Duplicates returns every reference declared more than once, in first-seen
// order.
func (f *File) Duplicates() []string {
	seen := map[string]int{}
	var out []string
	for _, r := range f.References() {
		seen[r]++
		if seen[r] == 2 {
			out = append(out, r)
		}
	}
	return out
}

// HasReference reports whether ref is already declared.
func (f *File) HasReference(ref string) bool {
	for _, r := range f.References() {
		if r == ref {
			return true
		}
	}
	return false
}

// AddReference appends ref to the references array, creating the array if
// missing. It reports whether the document changed.
func (f *File) AddReference(ref string) (bool, error) {
	if ref == "" || f.HasReference(ref) {
		return false, nil
	}

	raw, err := sjson.SetBytes(f.raw, "references.-1", ref)
	if err != nil {
		return false, fmt.Errorf("add reference %q to %s: %w", ref, f.path, err)
	}
	f.raw = raw

	return true, nil
}

// RemoveReference deletes ref from the references array. It reports whether
// the document changed.
func (f *File) RemoveReference(ref string) (bool, error) {
	for i, r := range f.References() {
		if r != ref {
			continue
		}

		raw, err := sjson.DeleteBytes(f.raw, fmt.Sprintf("references.%d", i))
		if err != nil {
			return false, fmt.Errorf("remove reference %q from %s: %w", ref, f.path, err)
		}
		f.raw = raw

		return true, nil
	}
	return false, nil
}

// Save writes the current document bytes back to the file's path.
func (f *File) Save() error {
	if err := os.WriteFile(f.path, f.raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// Scan walks root and returns every .asmdef path, skipping directories whose
// base name appears in ignore.
func Scan(root string, ignore []string) ([]string, error) {
	skip := make(map[string]struct{}, len(ignore))
	for _, dir := range ignore {
		skip[dir] = struct{}{}
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, ok := skip[d.Name()]; ok && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), Extension) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return out, nil
}
