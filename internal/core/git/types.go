package git

import (
	"fmt"
	"strings"
)

// StatusFlag is a set of per-file status bits
type StatusFlag uint16

const (
	FlagWTNew StatusFlag = 1 << iota
	FlagWTModified
	FlagWTDeleted
	FlagWTTypeChange
	FlagWTRenamed
	FlagIndexNew
	FlagIndexModified
	FlagIndexDeleted
	FlagIndexTypeChange
	FlagIndexRenamed
	FlagConflicted
)

const (
	worktreeFlags = FlagWTNew | FlagWTModified | FlagWTDeleted | FlagWTTypeChange | FlagWTRenamed
	indexFlags    = FlagIndexNew | FlagIndexModified | FlagIndexDeleted | FlagIndexTypeChange | FlagIndexRenamed
)

var flagNames = []struct {
	flag StatusFlag
	name string
}{
	{FlagIndexNew, "INDEX_NEW"},
	{FlagIndexModified, "INDEX_MODIFIED"},
	{FlagIndexDeleted, "INDEX_DELETED"},
	{FlagIndexTypeChange, "INDEX_TYPECHANGE"},
	{FlagIndexRenamed, "INDEX_RENAMED"},
	{FlagWTNew, "WT_NEW"},
	{FlagWTModified, "WT_MODIFIED"},
	{FlagWTDeleted, "WT_DELETED"},
	{FlagWTTypeChange, "WT_TYPECHANGE"},
	{FlagWTRenamed, "WT_RENAMED"},
	{FlagConflicted, "CONFLICTED"},
}

// InWorktree reports whether any working tree bit is set
func (f StatusFlag) InWorktree() bool { return f&worktreeFlags != 0 }

// InIndex reports whether any index bit is set
func (f StatusFlag) InIndex() bool { return f&indexFlags != 0 }

func (f StatusFlag) String() string {
	if f == 0 {
		return "CURRENT"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// FileStatus is one row of the repository status table
type FileStatus struct {
	Path  string
	Flags StatusFlag
}

// Indicator summarizes a status table. Values are ordered by priority.
type Indicator int

const (
	Clean Indicator = iota
	IndexModified
	WorkTreeModified
)

func (i Indicator) String() string {
	switch i {
	case Clean:
		return "clean"
	case IndexModified:
		return "index-modified"
	case WorkTreeModified:
		return "worktree-modified"
	default:
		return fmt.Sprintf("Indicator(%d)", int(i))
	}
}

// Mode selects how a status table is reduced to an Indicator
type Mode int

const (
	// ModePriority returns the highest priority classification in the table.
	ModePriority Mode = iota
	// ModeScanOrder lets each entry without worktree changes overwrite the
	// result of the entries before it. A staged file followed by an unchanged
	// one reports Clean.
	ModeScanOrder
)

// ParseMode converts "priority" or "scan" to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "priority", "":
		return ModePriority, nil
	case "scan", "scan-order":
		return ModeScanOrder, nil
	default:
		return 0, fmt.Errorf("unsupported status mode: %s", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModePriority:
		return "priority"
	case ModeScanOrder:
		return "scan"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// RefKind tells a branch from a detached HEAD
type RefKind int

const (
	BranchRef RefKind = iota
	DetachedRef
)

// Reference is the current position of HEAD
type Reference struct {
	Kind RefKind
	// Name is the branch short name, or the abbreviated commit id when detached.
	Name string
}

// Summary is the VCS part of the prompt
type Summary struct {
	Ref       Reference
	Indicator Indicator
}
