// Package assets provides read access to the extraction root holding mesh assets and rig descriptors.
package assets

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source implements ports.AssetSource on top of fs.FS.
// Extracted archives preserve the original casing of file names while records
// reference them inconsistently, so lookups fall back to a case-insensitive
// walk. Directory listings are cached per root.
type Source struct {
	open func(root string) fs.FS

	mu   sync.Mutex
	dirs map[string][]fs.DirEntry
}

var _ ports.AssetSource = (*Source)(nil)

// NewOSSource creates a Source reading from the operating system's file system.
func NewOSSource() *Source {
	return &Source{
		open: func(root string) fs.FS {
			if root == "" {
				root = "."
			}
			return os.DirFS(root)
		},
		dirs: make(map[string][]fs.DirEntry),
	}
}

// NewFSSource creates a Source serving every root from fsys.
func NewFSSource(fsys fs.FS) *Source {
	return &Source{
		open: func(string) fs.FS { return fsys },
		dirs: make(map[string][]fs.DirEntry),
	}
}

// Locate returns the stored path of rel under root.
func (s *Source) Locate(root, rel string) (string, bool) {
	rel = clean(rel)
	if !fs.ValidPath(rel) || rel == "." {
		return "", false
	}
	fsys := s.open(root)

	if info, err := fs.Stat(fsys, rel); err == nil {
		return rel, !info.IsDir()
	}

	cur := "."
	for _, seg := range strings.Split(rel, "/") {
		entries, err := s.readDir(root, fsys, cur)
		if err != nil {
			return "", false
		}
		match := ""
		for _, e := range entries {
			if strings.EqualFold(e.Name(), seg) {
				match = e.Name()
				break
			}
		}
		if match == "" {
			return "", false
		}
		cur = path.Join(cur, match)
	}

	info, err := fs.Stat(fsys, cur)
	if err != nil || info.IsDir() {
		return "", false
	}
	return cur, true
}

// ReadFile reads rel under root.
func (s *Source) ReadFile(root, rel string) ([]byte, error) {
	rel = clean(rel)
	data, err := fs.ReadFile(s.open(root), rel)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetLoadFailed.Error()), "path", rel)
	}
	return data, nil
}

func (s *Source) readDir(root string, fsys fs.FS, dir string) ([]fs.DirEntry, error) {
	key := root + "\x00" + dir

	s.mu.Lock()
	defer s.mu.Unlock()

	if entries, ok := s.dirs[key]; ok {
		return entries, nil
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	s.dirs[key] = entries
	return entries, nil
}

func clean(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")
	rel = strings.TrimLeft(rel, "/")
	if rel == "" {
		return "."
	}
	return path.Clean(rel)
}
