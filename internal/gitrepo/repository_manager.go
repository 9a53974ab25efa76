package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/relbranch/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant = "git executor not configured"

	statusSubcommandConstant        = "status"
	statusPorcelainFlagConstant     = "--porcelain"
	revParseSubcommandConstant      = "rev-parse"
	abbreviatedReferenceFlag        = "--abbrev-ref"
	headReferenceConstant           = "HEAD"
	remoteSubcommandConstant        = "remote"
	remoteGetURLSubcommandConstant  = "get-url"
	lsRemoteSubcommandConstant      = "ls-remote"
	headsFlagConstant               = "--heads"
	fetchSubcommandConstant         = "fetch"
	checkoutSubcommandConstant      = "checkout"
	createBranchFlagConstant        = "-b"
	pushSubcommandConstant          = "push"
	setUpstreamFlagConstant         = "--set-upstream"
	cloneSubcommandConstant         = "clone"
	cloneDepthFlagConstant          = "--depth=1"
	cloneBranchFlagTemplateConstant = "--branch="
	cloneSingleBranchFlagConstant   = "--single-branch"
	addSubcommandConstant           = "add"
	addAllFlagConstant              = "--all"
	commitSubcommandConstant        = "commit"
	commitMessageFlagConstant       = "-m"
	commitAllowEmptyFlagConstant    = "--allow-empty"

	remoteHeadsReferencePrefixConstant = "refs/heads/"
	lsRemoteFieldSeparatorConstant     = "\t"
	outputLineSeparatorConstant        = "\n"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor runs git commands on behalf of the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager exposes repository-level git operations used by the branch services.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates the executor and constructs a RepositoryManager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckCleanWorktree reports whether the repository has no staged, unstaged, or untracked changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{statusSubcommandConstant, statusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// CurrentBranch returns the name of the currently checked-out branch.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{revParseSubcommandConstant, abbreviatedReferenceFlag, headReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GetRemoteURL resolves the URL configured for the named remote.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{remoteSubcommandConstant, remoteGetURLSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// ListRemoteBranchNames lists branch names currently present on the named remote.
func (manager *RepositoryManager) ListRemoteBranchNames(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{lsRemoteSubcommandConstant, headsFlagConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	branchNames := []string{}
	for _, outputLine := range strings.Split(executionResult.StandardOutput, outputLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		lineFields := strings.Split(trimmedLine, lsRemoteFieldSeparatorConstant)
		referenceName := lineFields[len(lineFields)-1]
		if !strings.HasPrefix(referenceName, remoteHeadsReferencePrefixConstant) {
			continue
		}
		branchNames = append(branchNames, strings.TrimPrefix(referenceName, remoteHeadsReferencePrefixConstant))
	}
	return branchNames, nil
}

// FetchRemote updates remote-tracking references from the named remote.
func (manager *RepositoryManager) FetchRemote(executionContext context.Context, repositoryPath string, remoteName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{fetchSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CheckoutReference checks out the provided branch name or remote-tracking reference.
func (manager *RepositoryManager) CheckoutReference(executionContext context.Context, repositoryPath string, reference string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{checkoutSubcommandConstant, reference},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateAndSwitchBranch creates a new local branch at the current revision and switches to it.
func (manager *RepositoryManager) CreateAndSwitchBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{checkoutSubcommandConstant, createBranchFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// WorktreeStatus returns the human-readable status output for the repository.
func (manager *RepositoryManager) WorktreeStatus(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{statusSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

// PushBranchWithUpstream pushes the branch and configures upstream tracking.
func (manager *RepositoryManager) PushBranchWithUpstream(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{pushSubcommandConstant, setUpstreamFlagConstant, remoteName, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// PushBranch pushes the branch to the named remote without altering tracking configuration.
func (manager *RepositoryManager) PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{pushSubcommandConstant, remoteName, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// ShallowCloneBranch clones a single branch at depth one into the destination path.
func (manager *RepositoryManager) ShallowCloneBranch(executionContext context.Context, remoteURL string, branchName string, destinationPath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{
			cloneSubcommandConstant,
			cloneDepthFlagConstant,
			cloneBranchFlagTemplateConstant + branchName,
			cloneSingleBranchFlagConstant,
			remoteURL,
			destinationPath,
		},
	})
	return executionError
}

// StageAll stages every change in the repository, including deletions and untracked files.
func (manager *RepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{addSubcommandConstant, addAllFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateCommit records a commit with the provided message, permitting empty-diff commits so repeated
// rebuilds of an unchanged tree stay well defined.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, message string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{commitSubcommandConstant, commitAllowEmptyFlagConstant, commitMessageFlagConstant, message},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}
