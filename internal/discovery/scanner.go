package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jestpath/internal/manifest"
)

// Scanner finds npm projects (directories holding a package.json) in a workspace
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan returns every project root under root, root itself included, in walk order
func (s *Scanner) Scan(root string) ([]string, error) {
	var projects []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("workspace path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == manifest.FileName {
			projects = append(projects, filepath.Dir(path))
		}
		return nil
	})

	return projects, err
}
