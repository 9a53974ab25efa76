package build

import (
	"os"
	"path/filepath"
)

const (
	stagingDirectoryPatternConstant   = "relbranch-update-*"
	worktreeCopyDirectoryNameConstant = "worktree"
	cloneDirectoryNameConstant        = "clone"
	stagingDirectoryPermissions       = 0o755
)

// StagingArea holds the per-run temporary directories used while updating a built branch.
type StagingArea struct {
	rootPath         string
	worktreeCopyPath string
	clonePath        string
}

// NewStagingArea creates a fresh staging root with dedicated worktree and clone directories.
func NewStagingArea() (*StagingArea, error) {
	rootPath, temporaryDirectoryError := os.MkdirTemp("", stagingDirectoryPatternConstant)
	if temporaryDirectoryError != nil {
		return nil, temporaryDirectoryError
	}

	worktreeCopyPath := filepath.Join(rootPath, worktreeCopyDirectoryNameConstant)
	if directoryError := os.Mkdir(worktreeCopyPath, stagingDirectoryPermissions); directoryError != nil {
		_ = os.RemoveAll(rootPath)
		return nil, directoryError
	}

	clonePath := filepath.Join(rootPath, cloneDirectoryNameConstant)
	if directoryError := os.Mkdir(clonePath, stagingDirectoryPermissions); directoryError != nil {
		_ = os.RemoveAll(rootPath)
		return nil, directoryError
	}

	return &StagingArea{rootPath: rootPath, worktreeCopyPath: worktreeCopyPath, clonePath: clonePath}, nil
}

// RootPath returns the staging root directory.
func (stagingArea *StagingArea) RootPath() string {
	return stagingArea.rootPath
}

// WorktreeCopyPath returns the directory receiving the working tree copy.
func (stagingArea *StagingArea) WorktreeCopyPath() string {
	return stagingArea.worktreeCopyPath
}

// ClonePath returns the directory receiving the shallow clone of the target branch.
func (stagingArea *StagingArea) ClonePath() string {
	return stagingArea.clonePath
}

// Remove deletes the staging root and everything beneath it.
func (stagingArea *StagingArea) Remove() error {
	return os.RemoveAll(stagingArea.rootPath)
}
