package paths

import (
	"os"
	"path/filepath"
)

// Marker files that identify a project root, checked in order
var projectMarkers = []string{
	".git",
	DefaultKiroDir,
	"go.mod",
	"package.json",
	"pyproject.toml",
	"Cargo.toml",
	"pom.xml",
}

// FindProjectRoot walks upward from start looking for a project marker.
// It returns the marked directory, or start with found=false when no
// marker exists anywhere above it.
func FindProjectRoot(start string) (root string, found bool) {
	dir := start
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, false
		}
		dir = parent
	}
}
