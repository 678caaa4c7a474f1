// Package validation checks the file paths handed to the diagram generator
// before any rendering work starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SceneExtensions lists the accepted scene document extensions
var SceneExtensions = []string{".hcl"}

var formatExtensions = map[string][]string{
	"png":  {".png"},
	"jpeg": {".jpg", ".jpeg"},
	"svg":  {".svg"},
}

// ValidateOutputPath rejects empty paths, relative paths that climb out of
// the working directory, and destinations whose directory is missing or not
// writable. An existing file at the path is fine; it will be overwritten.
func ValidateOutputPath(outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	cleanPath := filepath.Clean(outputPath)
	if !filepath.IsAbs(cleanPath) && escapesWorkingDir(cleanPath) {
		return fmt.Errorf("path traversal detected in output path: %s", outputPath)
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", absPath)
	}

	dir := filepath.Dir(absPath)
	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("output path parent is not a directory: %s", dir)
	}

	probe, err := os.CreateTemp(dir, ".regen28_write_test")
	if err != nil {
		return fmt.Errorf("output directory is not writable: %s: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

// ValidateScenePath checks that a scene document exists, is a regular file
// and carries an HCL extension.
func ValidateScenePath(scenePath string) error {
	if strings.TrimSpace(scenePath) == "" {
		return fmt.Errorf("scene path cannot be empty")
	}

	cleanPath := filepath.Clean(scenePath)
	if !filepath.IsAbs(scenePath) && escapesWorkingDir(cleanPath) {
		return fmt.Errorf("potentially unsafe path detected: %s", scenePath)
	}

	if !hasSceneExtension(cleanPath) {
		return fmt.Errorf("scene file must have one of the extensions %v: %s", SceneExtensions, cleanPath)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("scene file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("failed to access scene file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("scene path must be a regular file: %s", cleanPath)
	}

	return nil
}

// ExtensionMatchesFormat reports whether the output path's extension is one
// a viewer would expect for the format. Paths without an extension match.
func ExtensionMatchesFormat(outputPath, format string) bool {
	ext := strings.ToLower(filepath.Ext(outputPath))
	if ext == "" {
		return true
	}
	for _, want := range formatExtensions[strings.ToLower(format)] {
		if ext == want {
			return true
		}
	}
	return false
}

func escapesWorkingDir(cleanPath string) bool {
	return cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator))
}

func hasSceneExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range SceneExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
