package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/relbranch/internal/gitrepo"
	"github.com/temirov/relbranch/internal/shared"
)

const (
	repositoryManagerMissingMessageConstant    = "repository manager not configured"
	worktreeSynchronizerMissingMessageConstant = "worktree synchronizer not configured"
	confirmationPrompterMissingMessageConstant = "confirmation prompter not configured"
	textPrompterMissingMessageConstant         = "text prompter not configured"
	worktreeDirtyMessageConstant               = "working tree has uncommitted changes"
	targetBranchRequiredMessageConstant        = "target branch name is required"
	updateDeclinedMessageConstant              = "update declined by operator"
	targetBranchMissingTemplateConstant        = "branch %q not found on remote %q"

	versionPromptConstant                    = "Version of the built branch to update (format x.x): "
	updateConfirmationPromptTemplateConstant = "Update %s on %s with the current working tree? [y/N] "
	noChangesMessageTemplateConstant         = "no changes detected for %s; publishing an empty build commit\n"
	branchUpdatedLogMessageConstant          = "built branch updated"
	stagingCleanupFailedLogMessageConstant   = "staging cleanup failed"
	logFieldBranchNameConstant               = "branch"
	logFieldRemoteNameConstant               = "remote"
	logFieldRepositorySlugConstant           = "repository"
	logFieldStagingRootConstant              = "staging_root"
)

// Configuration errors surfaced by NewService.
var (
	ErrRepositoryManagerNotConfigured    = errors.New(repositoryManagerMissingMessageConstant)
	ErrWorktreeSynchronizerNotConfigured = errors.New(worktreeSynchronizerMissingMessageConstant)
	ErrConfirmationPrompterNotConfigured = errors.New(confirmationPrompterMissingMessageConstant)
	ErrTextPrompterNotConfigured         = errors.New(textPrompterMissingMessageConstant)
)

// Operation errors surfaced by Update.
var (
	ErrWorktreeDirty        = errors.New(worktreeDirtyMessageConstant)
	ErrTargetBranchRequired = errors.New(targetBranchRequiredMessageConstant)
	ErrUpdateDeclined       = errors.New(updateDeclinedMessageConstant)
)

// TargetBranchNotFoundError reports that the branch to update does not exist on the remote.
type TargetBranchNotFoundError struct {
	BranchName string
	RemoteName string
}

// Error describes the missing branch.
func (notFoundError TargetBranchNotFoundError) Error() string {
	return fmt.Sprintf(targetBranchMissingTemplateConstant, notFoundError.BranchName, notFoundError.RemoteName)
}

// StagingAreaFactory creates the per-run staging directories.
type StagingAreaFactory func() (*StagingArea, error)

// ServiceDependencies collects the collaborators required by the built branch update service.
type ServiceDependencies struct {
	Logger               *zap.Logger
	RepositoryManager    shared.GitRepositoryManager
	WorktreeSynchronizer shared.WorktreeSynchronizer
	ConfirmationPrompter shared.ConfirmationPrompter
	TextPrompter         shared.TextPrompter
	OutputWriter         io.Writer
	StagingAreaFactory   StagingAreaFactory
}

// Options parameterizes a single built branch update run.
type Options struct {
	RepositoryPath  string
	TargetBranch    string
	RemoteName      string
	BranchPrefix    string
	CommitMessage   string
	ExcludePatterns []string
}

// Result captures the outcome of a built branch update run.
type Result struct {
	BranchName string
	Pushed     bool
	NoChanges  bool
}

// Service refreshes built release branches from the current working tree.
type Service struct {
	logger               *zap.Logger
	repositoryManager    shared.GitRepositoryManager
	worktreeSynchronizer shared.WorktreeSynchronizer
	confirmation         shared.ConfirmationPrompter
	textPrompter         shared.TextPrompter
	outputWriter         io.Writer
	stagingAreaFactory   StagingAreaFactory
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.WorktreeSynchronizer == nil {
		return nil, ErrWorktreeSynchronizerNotConfigured
	}
	if dependencies.ConfirmationPrompter == nil {
		return nil, ErrConfirmationPrompterNotConfigured
	}
	if dependencies.TextPrompter == nil {
		return nil, ErrTextPrompterNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	outputWriter := dependencies.OutputWriter
	if outputWriter == nil {
		outputWriter = io.Discard
	}

	stagingAreaFactory := dependencies.StagingAreaFactory
	if stagingAreaFactory == nil {
		stagingAreaFactory = NewStagingArea
	}

	return &Service{
		logger:               logger,
		repositoryManager:    dependencies.RepositoryManager,
		worktreeSynchronizer: dependencies.WorktreeSynchronizer,
		confirmation:         dependencies.ConfirmationPrompter,
		textPrompter:         dependencies.TextPrompter,
		outputWriter:         outputWriter,
		stagingAreaFactory:   stagingAreaFactory,
	}, nil
}

// Update runs the built branch update workflow and returns its outcome.
func (service *Service) Update(executionContext context.Context, options Options) (Result, error) {
	worktreeClean, cleanCheckError := service.repositoryManager.CheckCleanWorktree(executionContext, options.RepositoryPath)
	if cleanCheckError != nil {
		return Result{}, cleanCheckError
	}
	if !worktreeClean {
		return Result{}, ErrWorktreeDirty
	}

	targetBranch, targetBranchError := service.resolveTargetBranch(options)
	if targetBranchError != nil {
		return Result{}, targetBranchError
	}

	remoteBranchNames, listError := service.repositoryManager.ListRemoteBranchNames(executionContext, options.RepositoryPath, options.RemoteName)
	if listError != nil {
		return Result{}, listError
	}
	if !containsBranch(remoteBranchNames, targetBranch) {
		return Result{}, TargetBranchNotFoundError{BranchName: targetBranch, RemoteName: options.RemoteName}
	}

	updateConfirmed, confirmError := service.confirmation.Confirm(fmt.Sprintf(updateConfirmationPromptTemplateConstant, targetBranch, options.RemoteName))
	if confirmError != nil {
		return Result{}, confirmError
	}
	if !updateConfirmed {
		return Result{}, ErrUpdateDeclined
	}

	stagingArea, stagingError := service.stagingAreaFactory()
	if stagingError != nil {
		return Result{}, stagingError
	}
	defer func() {
		if removeError := stagingArea.Remove(); removeError != nil {
			service.logger.Warn(
				stagingCleanupFailedLogMessageConstant,
				zap.String(logFieldStagingRootConstant, stagingArea.RootPath()),
				zap.Error(removeError),
			)
		}
	}()

	if copyError := service.worktreeSynchronizer.CopyTree(executionContext, options.RepositoryPath, stagingArea.WorktreeCopyPath(), options.ExcludePatterns); copyError != nil {
		return Result{}, copyError
	}

	remoteURL, remoteURLError := service.repositoryManager.GetRemoteURL(executionContext, options.RepositoryPath, options.RemoteName)
	if remoteURLError != nil {
		return Result{}, remoteURLError
	}

	if cloneError := service.repositoryManager.ShallowCloneBranch(executionContext, remoteURL, targetBranch, stagingArea.ClonePath()); cloneError != nil {
		return Result{}, cloneError
	}

	mirrorExcludes := appendGitMetadataExclude(options.ExcludePatterns)
	if mirrorError := service.worktreeSynchronizer.MirrorTree(executionContext, stagingArea.WorktreeCopyPath(), stagingArea.ClonePath(), mirrorExcludes); mirrorError != nil {
		return Result{}, mirrorError
	}

	cloneClean, cloneCleanError := service.repositoryManager.CheckCleanWorktree(executionContext, stagingArea.ClonePath())
	if cloneCleanError != nil {
		return Result{}, cloneCleanError
	}
	if cloneClean {
		fmt.Fprintf(service.outputWriter, noChangesMessageTemplateConstant, targetBranch)
	}

	if stageError := service.repositoryManager.StageAll(executionContext, stagingArea.ClonePath()); stageError != nil {
		return Result{}, stageError
	}
	if commitError := service.repositoryManager.CreateCommit(executionContext, stagingArea.ClonePath(), options.CommitMessage); commitError != nil {
		return Result{}, commitError
	}
	if pushError := service.repositoryManager.PushBranch(executionContext, stagingArea.ClonePath(), options.RemoteName, targetBranch); pushError != nil {
		return Result{}, pushError
	}

	service.logger.Info(
		branchUpdatedLogMessageConstant,
		zap.String(logFieldBranchNameConstant, targetBranch),
		zap.String(logFieldRemoteNameConstant, options.RemoteName),
		zap.String(logFieldRepositorySlugConstant, repositorySlug(remoteURL)),
	)

	return Result{BranchName: targetBranch, Pushed: true, NoChanges: cloneClean}, nil
}

func (service *Service) resolveTargetBranch(options Options) (string, error) {
	targetBranch := strings.TrimSpace(options.TargetBranch)
	if len(targetBranch) > 0 {
		return targetBranch, nil
	}

	promptedVersion, promptError := service.textPrompter.PromptText(versionPromptConstant, "")
	if promptError != nil {
		return "", promptError
	}

	promptedVersion = strings.TrimSpace(promptedVersion)
	if len(promptedVersion) == 0 {
		return "", ErrTargetBranchRequired
	}
	return options.BranchPrefix + promptedVersion, nil
}

func containsBranch(branchNames []string, targetBranch string) bool {
	for _, branchName := range branchNames {
		if branchName == targetBranch {
			return true
		}
	}
	return false
}

func appendGitMetadataExclude(excludePatterns []string) []string {
	for _, pattern := range excludePatterns {
		if pattern == gitMetadataDirectoryConstant {
			return excludePatterns
		}
	}
	merged := make([]string, 0, len(excludePatterns)+1)
	merged = append(merged, excludePatterns...)
	return append(merged, gitMetadataDirectoryConstant)
}

func repositorySlug(remoteURL string) string {
	parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return remoteURL
	}
	return parsedRemote.OwnerRepository()
}
