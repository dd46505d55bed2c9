package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/constants"
	"github.com/ludo-technologies/prosescan/internal/parser"
)

// skipDirs are directory names never worth descending into
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// FileHelper collects and reads lintable documents
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectDocuments expands the given paths into a sorted, deduplicated list
// of lintable document files. Explicit file arguments must exist and carry a
// supported extension; directories are walked with hidden directories,
// node_modules, vendor, and the exclude globs skipped. Oversized files are
// skipped with a warning on stderr.
func (h *FileHelper) CollectDocuments(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	matcher := gitignore.CompileIgnoreLines(excludePatterns...)

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		cleaned := filepath.Clean(path)
		if !seen[cleaned] {
			seen[cleaned] = true
			files = append(files, cleaned)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, domain.NewFileNotFoundError(path, err)
			}
			return nil, domain.NewIOError(fmt.Sprintf("failed to stat %s", path), err)
		}

		if !info.IsDir() {
			// Explicit file arguments bypass exclude globs but not the
			// extension check
			if !h.IsValidDocument(path) {
				return nil, domain.NewUnsupportedFormatError(path)
			}
			if h.tooLarge(path, info.Size()) {
				continue
			}
			add(path)
			continue
		}

		collected, err := h.collectFromDirectory(path, recursive, matcher)
		if err != nil {
			return nil, err
		}
		for _, f := range collected {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// collectFromDirectory walks one directory argument
func (h *FileHelper) collectFromDirectory(root string, recursive bool, matcher *gitignore.GitIgnore) ([]string, error) {
	var files []string

	walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Exclude globs match against the path relative to the walked
		// directory, gitignore-style
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == root {
				return nil
			}
			name := filepath.Base(path)
			if strings.HasPrefix(name, ".") || skipDirs[name] || matcher.MatchesPath(rel) {
				return filepath.SkipDir
			}
			if !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if !h.IsValidDocument(path) {
			return nil
		}
		if matcher.MatchesPath(rel) {
			return nil
		}
		if h.tooLarge(path, info.Size()) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, domain.NewIOError(fmt.Sprintf("failed to walk %s", root), walkErr)
	}

	return files, nil
}

// tooLarge reports and skips files above the size limit
func (h *FileHelper) tooLarge(path string, size int64) bool {
	if size <= constants.MaxFileSizeBytes {
		return false
	}
	fmt.Fprintf(os.Stderr, "Warning: skipping %s (%d bytes exceeds the %d MiB limit)\n",
		path, size, constants.MaxFileSizeBytes/(1024*1024))
	return true
}

// IsValidDocument checks whether a path has a supported document extension
func (h *FileHelper) IsValidDocument(path string) bool {
	_, ok := parser.FormatForPath(path)
	return ok
}

// FileExists checks if a path exists and is a regular file
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
