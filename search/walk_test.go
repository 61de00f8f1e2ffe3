package search

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/monochromegane/go-gitignore"
	"github.com/stretchr/testify/require"
)

func TestFindRepos(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"alpha/.git",
		"alpha/nested/.git",
		"group/beta/.git",
		"group/plain",
		"node_modules/dep/.git",
		".cache/hidden/.git",
		"ignored/gamma/.git",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("ignored\n"), 0o644))
	// A .git file, as in a worktree.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "worktree"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "worktree", ".git"), []byte("gitdir: elsewhere\n"), 0o644))

	repos, err := FindRepos(root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "alpha"),
		filepath.Join(root, "group", "beta"),
		filepath.Join(root, "worktree"),
	}, repos)
}

func TestFindReposRootIsRepo(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".git", "sub/.git")

	repos, err := FindRepos(root)
	require.NoError(t, err)
	require.Equal(t, []string{root, filepath.Join(root, "sub")}, repos)
}

func TestFindReposUnreadableGitignore(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "alpha/.git", "ignored/beta/.git")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("ignored\n"), 0o644))

	prev := newIgnoreMatcher
	newIgnoreMatcher = func(string, ...string) (gitignore.IgnoreMatcher, error) {
		return nil, errors.New("permission denied")
	}
	t.Cleanup(func() { newIgnoreMatcher = prev })

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	repos, err := FindRepos(root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "alpha"),
		filepath.Join(root, "ignored", "beta"),
	}, repos)
	require.Contains(t, logs.String(), ".gitignore: permission denied")
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
}
