package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a throwaway repository in a temporary directory
type TestRepo struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository
}

// CreateEmptyRepo initializes a repository with no commits on branch main
func CreateEmptyRepo(t *testing.T) *TestRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("Failed to point HEAD at main: %v", err)
	}

	return &TestRepo{t: t, Dir: dir, Repo: repo}
}

// CreateTestRepo initializes a repository on branch main with one commit
// containing README.md
func CreateTestRepo(t *testing.T) *TestRepo {
	t.Helper()

	r := CreateEmptyRepo(t)
	r.WriteFile("README.md", "# Test Repository\n")
	r.Add("README.md")
	r.Commit("Initial commit")
	return r
}

// WriteFile writes content to name relative to the repository root
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Remove deletes name from the working tree
func (r *TestRepo) Remove(name string) {
	r.t.Helper()

	if err := os.Remove(filepath.Join(r.Dir, name)); err != nil {
		r.t.Fatalf("Failed to remove %s: %v", name, err)
	}
}

// Add stages name
func (r *TestRepo) Add(name string) {
	r.t.Helper()

	wt := r.worktree()
	if _, err := wt.Add(name); err != nil {
		r.t.Fatalf("Failed to add %s: %v", name, err)
	}
}

// Commit records the index and returns the new commit hash
func (r *TestRepo) Commit(msg string) plumbing.Hash {
	r.t.Helper()

	wt := r.worktree()
	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Unix(1700000000, 0),
		},
	})
	if err != nil {
		r.t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

// Detach points HEAD directly at hash
func (r *TestRepo) Detach(hash plumbing.Hash) {
	r.t.Helper()

	if err := r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)); err != nil {
		r.t.Fatalf("Failed to detach HEAD: %v", err)
	}
}

func (r *TestRepo) worktree() *git.Worktree {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("Failed to get worktree: %v", err)
	}
	return wt
}
