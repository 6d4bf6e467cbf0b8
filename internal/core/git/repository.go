// Package git reads branch and file status information from a repository
// and reduces it to the prompt's VCS segment.
package git

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ShortHashLen is the number of hex characters shown for a detached HEAD
const ShortHashLen = 6

// ErrNotRepository is returned by Open when path is not inside a repository
var ErrNotRepository = errors.New("not a git repository")

// Repository is an open repository handle
type Repository struct {
	path string
	repo *gogit.Repository
}

// Open opens the repository at path. When discover is true parent
// directories are searched as well.
func Open(path string, discover bool) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: discover,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return &Repository{path: path, repo: repo}, nil
}

// Close releases the handle and the files held by its storage. It is safe
// to call more than once.
func (r *Repository) Close() error {
	if r.repo == nil {
		return nil
	}
	storer := r.repo.Storer
	r.repo = nil
	if c, ok := storer.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to close repository storage: %w", err)
		}
	}
	return nil
}

// Head resolves the current reference. It fails on a repository without commits.
func (r *Repository) Head() (Reference, error) {
	if r.repo == nil {
		return Reference{}, errors.New("repository is closed")
	}
	ref, err := r.repo.Head()
	if err != nil {
		return Reference{}, fmt.Errorf("failed to get HEAD of %s: %w", r.path, err)
	}
	if ref.Name().IsBranch() {
		return Reference{Kind: BranchRef, Name: ref.Name().Short()}, nil
	}
	return Reference{Kind: DetachedRef, Name: ref.Hash().String()[:ShortHashLen]}, nil
}

// Status returns the status table sorted by path. Untracked files are
// included and ignored files are not. A bare repository has an empty table.
func (r *Repository) Status() ([]FileStatus, error) {
	if r.repo == nil {
		return nil, errors.New("repository is closed")
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	entries := make([]FileStatus, 0, len(status))
	for path, st := range status {
		entries = append(entries, FileStatus{
			Path:  path,
			Flags: stagingFlags(st.Staging) | worktreeFlag(st.Worktree),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func stagingFlags(code gogit.StatusCode) StatusFlag {
	switch code {
	case gogit.Added, gogit.Copied:
		return FlagIndexNew
	case gogit.Modified:
		return FlagIndexModified
	case gogit.Deleted:
		return FlagIndexDeleted
	case gogit.Renamed:
		return FlagIndexRenamed
	case gogit.UpdatedButUnmerged:
		return FlagConflicted
	default:
		return 0
	}
}

func worktreeFlag(code gogit.StatusCode) StatusFlag {
	switch code {
	case gogit.Untracked:
		return FlagWTNew
	case gogit.Modified:
		return FlagWTModified
	case gogit.Deleted:
		return FlagWTDeleted
	case gogit.Renamed:
		return FlagWTRenamed
	case gogit.UpdatedButUnmerged:
		return FlagConflicted
	default:
		return 0
	}
}
