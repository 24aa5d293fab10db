// Package artifact is the store for generated binary assets. Artifacts are
// keyed by deterministic identifiers inside a per-session namespace;
// existence of an identifier is the pipeline's sole caching signal.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// Store persists artifacts by identifier. Writes are append-only: within a
// request no two writers target the same identifier, so no locking is
// needed.
type Store interface {
	// Save persists data under name with the given MIME type.
	Save(name string, data []byte, mimeType string) error
	// Exists reports whether an artifact with this name is already stored.
	Exists(name string) bool
	// List returns the stored artifact names in lexical order.
	List() ([]string, error)
}

// Dir is a filesystem-backed Store rooted at a single directory. The MIME
// type is not stored separately; the identifier's extension carries it.
type Dir struct {
	root string
}

// NewDir opens (creating if needed) a store rooted at root.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory %s: %w", root, err)
	}
	return &Dir{root: root}, nil
}

// NewSession opens a store under baseDir/session. An empty session gets a
// fresh UUID, giving each request an isolated namespace.
func NewSession(baseDir, session string) (*Dir, string, error) {
	if session == "" {
		session = uuid.NewString()
	}
	store, err := NewDir(filepath.Join(baseDir, session))
	if err != nil {
		return nil, "", err
	}
	return store, session, nil
}

// Path returns the absolute location of an artifact name inside the store.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, filepath.Base(name))
}

// Save writes data under name. The MIME type is accepted for interface
// compatibility; on disk the extension is authoritative.
func (d *Dir) Save(name string, data []byte, mimeType string) error {
	_ = mimeType
	if err := os.WriteFile(d.Path(name), data, 0644); err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", name, err)
	}
	return nil
}

// Exists reports whether name is present in the store.
func (d *Dir) Exists(name string) bool {
	_, err := os.Stat(d.Path(name))
	return err == nil
}

// List returns stored artifact names sorted lexically.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
