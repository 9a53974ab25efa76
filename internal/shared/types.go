package shared

import (
	"context"

	"github.com/temirov/relbranch/internal/execshell"
)

const (
	// OriginRemoteNameConstant identifies the default upstream remote.
	OriginRemoteNameConstant = "origin"
	// ReleaseBranchPrefixConstant is the conventional prefix for release branch names.
	ReleaseBranchPrefixConstant = "release-branch-"
)

// GitExecutor exposes the subset of shell execution used by branch services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteRsync(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitRepositoryManager exposes repository-level git operations.
type GitRepositoryManager interface {
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	ListRemoteBranchNames(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error)
	FetchRemote(executionContext context.Context, repositoryPath string, remoteName string) error
	CheckoutReference(executionContext context.Context, repositoryPath string, reference string) error
	CreateAndSwitchBranch(executionContext context.Context, repositoryPath string, branchName string) error
	WorktreeStatus(executionContext context.Context, repositoryPath string) (string, error)
	PushBranchWithUpstream(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	ShallowCloneBranch(executionContext context.Context, remoteURL string, branchName string, destinationPath string) error
	StageAll(executionContext context.Context, repositoryPath string) error
	CreateCommit(executionContext context.Context, repositoryPath string, message string) error
}

// WorktreeSynchronizer copies and mirrors directory trees between staging locations.
type WorktreeSynchronizer interface {
	CopyTree(executionContext context.Context, sourcePath string, destinationPath string, excludePatterns []string) error
	MirrorTree(executionContext context.Context, sourcePath string, destinationPath string, excludePatterns []string) error
}

// ConfirmationPrompter collects operator confirmations prior to mutating actions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// TextPrompter collects free-form operator input with an optional default value.
type TextPrompter interface {
	PromptText(prompt string, defaultValue string) (string, error)
}
