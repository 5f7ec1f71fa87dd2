package files

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// document extensions recognized during directory discovery.
var allowedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// CollectSources walks a directory recursively and returns the paths of
// all contained API description files, relative to dir, in walk order.
func CollectSources(dir string) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !IsDocumentFile(path) {
			return nil
		}
		rel, _ := filepath.Rel(dir, path)
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// IsDocumentFile checks the file extension against the recognized set,
// case-insensitively.
func IsDocumentFile(path string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(path))]
}
