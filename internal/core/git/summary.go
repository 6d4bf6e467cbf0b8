package git

import (
	"errors"
	"fmt"

	"github.com/aki/pista/internal/core/logger"
)

// SummaryOptions controls Summarize
type SummaryOptions struct {
	Mode     Mode
	Discover bool
	Logger   logger.Logger
}

// Reduce collapses a status table into one Indicator.
//
// An entry with working tree changes decides WorkTreeModified immediately.
// Otherwise entries with index changes classify as IndexModified and all
// others as Clean; ModePriority keeps the maximum and ModeScanOrder keeps the
// last classification seen. An empty table is Clean.
func Reduce(entries []FileStatus, mode Mode) Indicator {
	result := Clean
	for _, e := range entries {
		class := Classify(e.Flags)
		if class == WorkTreeModified {
			return class
		}
		if mode == ModeScanOrder || class > result {
			result = class
		}
	}
	return result
}

// Classify returns the indicator a single entry implies on its own
func Classify(f StatusFlag) Indicator {
	switch {
	case f.InWorktree():
		return WorkTreeModified
	case f.InIndex():
		return IndexModified
	default:
		return Clean
	}
}

// Summarize opens the repository at path and returns its reference and
// status indicator. It returns nil without error when there is no
// repository at path.
func Summarize(path string, opts SummaryOptions) (*Summary, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo, err := Open(path, opts.Discover)
	if err != nil {
		if errors.Is(err, ErrNotRepository) {
			log.Debug("no repository", "path", path)
			return nil, nil
		}
		return nil, err
	}
	defer repo.Close()

	ref, err := repo.Head()
	if err != nil {
		return nil, err
	}

	entries, err := repo.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status of %s: %w", path, err)
	}

	indicator := Reduce(entries, opts.Mode)
	log.Debug("summarized repository",
		"path", path,
		"ref", ref.Name,
		"entries", len(entries),
		"mode", opts.Mode.String(),
		"indicator", indicator.String())

	return &Summary{Ref: ref, Indicator: indicator}, nil
}
