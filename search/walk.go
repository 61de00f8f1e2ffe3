package search

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/monochromegane/go-gitignore"
)

var newIgnoreMatcher = gitignore.NewGitIgnore

// FindRepos walks the tree rooted at root and returns the absolute paths of
// the git repositories in it, in walk order. It respects .gitignore if found
// in the root directory and does not descend into a repository once found.
func FindRepos(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var repos []string
	var ignoreMatcher gitignore.IgnoreMatcher

	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignoreMatcher, err = newIgnoreMatcher(gitignorePath)
		if err != nil {
			log.Printf("ignoring %s: %v", gitignorePath, err)
			ignoreMatcher = nil
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors (permission denied, etc.) to keep partial results
		}
		if !d.IsDir() {
			return nil
		}

		if path != root {
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			if ignoreMatcher != nil && ignoreMatcher.Match(path, true) {
				return filepath.SkipDir
			}
		}

		if isRepo(path) {
			repos = append(repos, path)
			if path != root {
				return filepath.SkipDir
			}
		}
		return nil
	})

	return repos, err
}

// isRepo reports whether dir has a .git entry. Worktrees and submodules use a
// .git file rather than a directory, so either counts.
func isRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
