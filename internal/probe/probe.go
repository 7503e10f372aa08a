package probe

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"jestpath/internal/platform"
)

// Probe answers the two questions path resolution asks of a filesystem
type Probe interface {
	// Exists reports whether anything (file or directory) lives at path
	Exists(path string) bool
	// ReadFile returns the contents of the file at path
	ReadFile(path string) ([]byte, error)
}

// OS probes the local disk
type OS struct{}

// NewOS creates a Probe backed by the local disk
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether path can be stat'ed
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the file at path. os.ReadFile releases the handle on every return path.
func (OS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ForPlatform returns a disk Probe that accepts paths written in target's
// conventions. When target is not the host, paths are rewritten with the
// host's separators before the disk is touched.
func ForPlatform(target platform.OS) Probe {
	host := platform.Current()
	if target == host {
		return NewOS()
	}
	return &translated{host: host}
}

type translated struct {
	disk OS
	host platform.OS
}

func (t *translated) toHost(path string) string {
	return t.host.Normalize(strings.ReplaceAll(path, `\`, "/"))
}

func (t *translated) Exists(path string) bool {
	return t.disk.Exists(t.toHost(path))
}

func (t *translated) ReadFile(path string) ([]byte, error) {
	return t.disk.ReadFile(t.toHost(path))
}

// Map is an in-memory Probe keyed by exact path, used to simulate a
// filesystem for another platform
type Map map[string][]byte

// Exists reports whether path was registered
func (m Map) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

// ReadFile returns the registered contents of path
func (m Map) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}
