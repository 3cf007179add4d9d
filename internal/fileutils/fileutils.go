// Package fileutils provides common file operations used by the commands.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CollectPDFs expands command-line arguments into a flat list of PDF
// paths. File arguments pass through unchanged; directory arguments
// contribute their .pdf entries sorted by name. A directory without any
// PDF, or a missing path, is an error.
func CollectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if FileExists(arg) {
			paths = append(paths, arg)
			continue
		}
		if !DirectoryExists(arg) {
			return nil, fmt.Errorf("no such file or directory: %s", arg)
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				found = append(found, filepath.Join(arg, entry.Name()))
			}
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no PDF files in directory: %s", arg)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// WriteFile writes data to a file, creating any parent directories first
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && !DirectoryExists(dir) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
