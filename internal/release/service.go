package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/relbranch/internal/shared"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	confirmationPrompterMissingMessage      = "confirmation prompter not configured"
	textPrompterMissingMessageConstant      = "text prompter not configured"
	versionRequiredMessageConstant          = "version token is required"
	pushDeclinedMessageConstant             = "push declined by operator"
	branchCollisionTemplateConstant         = "remote branch %q collides with candidate %q"
	versionPromptConstant                   = "Version for the release branch (format x.x): "
	baseBranchPromptTemplateConstant        = "Base branch [%s]: "
	pushConfirmationPromptTemplateConstant  = "Push %s to %s? [y/N] "
	betaTagPromptConstant                   = "Create a beta tag for this release? [y/N] "
	betaTagNotImplementedMessageConstant    = "beta tag creation is not implemented\n"
	betaTagNotImplementedLogMessageConstant = "beta tag creation requested but not implemented"
	remoteReferenceSeparatorConstant        = "/"
	branchCreatedLogMessageConstant         = "release branch created"
	logFieldBranchNameConstant              = "branch"
	logFieldBaseBranchConstant              = "base_branch"
	logFieldRemoteNameConstant              = "remote"
)

// Configuration errors surfaced by NewService.
var (
	ErrRepositoryManagerNotConfigured    = errors.New(repositoryManagerMissingMessageConstant)
	ErrConfirmationPrompterNotConfigured = errors.New(confirmationPrompterMissingMessage)
	ErrTextPrompterNotConfigured         = errors.New(textPrompterMissingMessageConstant)
)

// Operation errors surfaced by Create.
var (
	ErrVersionRequired = errors.New(versionRequiredMessageConstant)
	ErrPushDeclined    = errors.New(pushDeclinedMessageConstant)
)

// BranchCollisionError reports a remote branch conflicting with the candidate name.
type BranchCollisionError struct {
	CandidateBranch string
	ExistingBranch  string
}

// Error describes the collision.
func (collisionError BranchCollisionError) Error() string {
	return fmt.Sprintf(branchCollisionTemplateConstant, collisionError.ExistingBranch, collisionError.CandidateBranch)
}

// ServiceDependencies collects the collaborators required by the release branch service.
type ServiceDependencies struct {
	Logger               *zap.Logger
	RepositoryManager    shared.GitRepositoryManager
	ConfirmationPrompter shared.ConfirmationPrompter
	TextPrompter         shared.TextPrompter
	OutputWriter         io.Writer
}

// Options parameterizes a single release branch creation run.
type Options struct {
	RepositoryPath    string
	Version           string
	BaseBranch        string
	DefaultBaseBranch string
	RemoteName        string
	BranchPrefix      string
	MatchPolicy       shared.BranchMatchPolicy
}

// Result captures the outcome of a release branch creation run.
type Result struct {
	BranchName       string
	BaseBranch       string
	Pushed           bool
	BetaTagRequested bool
}

// Service creates release branches from operator input.
type Service struct {
	logger            *zap.Logger
	repositoryManager shared.GitRepositoryManager
	confirmation      shared.ConfirmationPrompter
	textPrompter      shared.TextPrompter
	outputWriter      io.Writer
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
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

	return &Service{
		logger:            logger,
		repositoryManager: dependencies.RepositoryManager,
		confirmation:      dependencies.ConfirmationPrompter,
		textPrompter:      dependencies.TextPrompter,
		outputWriter:      outputWriter,
	}, nil
}

// Create runs the release branch creation workflow and returns its outcome.
func (service *Service) Create(executionContext context.Context, options Options) (Result, error) {
	version, versionError := service.resolveVersion(options)
	if versionError != nil {
		return Result{}, versionError
	}

	baseBranch, baseBranchError := service.resolveBaseBranch(options)
	if baseBranchError != nil {
		return Result{}, baseBranchError
	}

	candidateBranch := options.BranchPrefix + version

	remoteBranchNames, listError := service.repositoryManager.ListRemoteBranchNames(executionContext, options.RepositoryPath, options.RemoteName)
	if listError != nil {
		return Result{}, listError
	}
	if existingBranch, collisionFound := options.MatchPolicy.FindCollision(remoteBranchNames, candidateBranch); collisionFound {
		return Result{}, BranchCollisionError{CandidateBranch: candidateBranch, ExistingBranch: existingBranch}
	}

	if fetchError := service.repositoryManager.FetchRemote(executionContext, options.RepositoryPath, options.RemoteName); fetchError != nil {
		return Result{}, fetchError
	}

	baseReference := options.RemoteName + remoteReferenceSeparatorConstant + baseBranch
	if checkoutError := service.repositoryManager.CheckoutReference(executionContext, options.RepositoryPath, baseReference); checkoutError != nil {
		return Result{}, checkoutError
	}

	if branchError := service.repositoryManager.CreateAndSwitchBranch(executionContext, options.RepositoryPath, candidateBranch); branchError != nil {
		return Result{}, branchError
	}

	statusOutput, statusError := service.repositoryManager.WorktreeStatus(executionContext, options.RepositoryPath)
	if statusError != nil {
		return Result{}, statusError
	}
	fmt.Fprint(service.outputWriter, statusOutput)

	pushConfirmed, confirmError := service.confirmation.Confirm(fmt.Sprintf(pushConfirmationPromptTemplateConstant, candidateBranch, options.RemoteName))
	if confirmError != nil {
		return Result{}, confirmError
	}
	if !pushConfirmed {
		return Result{}, ErrPushDeclined
	}

	if pushError := service.repositoryManager.PushBranchWithUpstream(executionContext, options.RepositoryPath, options.RemoteName, candidateBranch); pushError != nil {
		return Result{}, pushError
	}

	service.logger.Info(
		branchCreatedLogMessageConstant,
		zap.String(logFieldBranchNameConstant, candidateBranch),
		zap.String(logFieldBaseBranchConstant, baseBranch),
		zap.String(logFieldRemoteNameConstant, options.RemoteName),
	)

	result := Result{BranchName: candidateBranch, BaseBranch: baseBranch, Pushed: true}

	betaTagRequested, betaTagError := service.confirmation.Confirm(betaTagPromptConstant)
	if betaTagError != nil {
		return result, betaTagError
	}
	if betaTagRequested {
		result.BetaTagRequested = true
		fmt.Fprint(service.outputWriter, betaTagNotImplementedMessageConstant)
		service.logger.Warn(betaTagNotImplementedLogMessageConstant, zap.String(logFieldBranchNameConstant, candidateBranch))
	}

	return result, nil
}

func (service *Service) resolveVersion(options Options) (string, error) {
	version := strings.TrimSpace(options.Version)
	if len(version) > 0 {
		return version, nil
	}

	promptedVersion, promptError := service.textPrompter.PromptText(versionPromptConstant, "")
	if promptError != nil {
		return "", promptError
	}

	promptedVersion = strings.TrimSpace(promptedVersion)
	if len(promptedVersion) == 0 {
		return "", ErrVersionRequired
	}
	return promptedVersion, nil
}

func (service *Service) resolveBaseBranch(options Options) (string, error) {
	baseBranch := strings.TrimSpace(options.BaseBranch)
	if len(baseBranch) > 0 {
		return baseBranch, nil
	}

	promptedBaseBranch, promptError := service.textPrompter.PromptText(
		fmt.Sprintf(baseBranchPromptTemplateConstant, options.DefaultBaseBranch),
		options.DefaultBaseBranch,
	)
	if promptError != nil {
		return "", promptError
	}
	return strings.TrimSpace(promptedBaseBranch), nil
}
