package build

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/relbranch/internal/gitrepo"
	"github.com/temirov/relbranch/internal/mirror"
	"github.com/temirov/relbranch/internal/prompt"
	"github.com/temirov/relbranch/internal/shared"
	"github.com/temirov/relbranch/internal/utils"
)

const (
	commandUseConstant              = "update [branch]"
	commandShortDescriptionConstant = "Update a built release branch with the current working tree"
	commandLongDescriptionConstant  = "update copies the clean working tree into a staging area, shallow-clones the target branch, mirrors the copy over the clone while preserving its git metadata, and publishes the resulting commit."
	commandExampleConstant          = "relbranch update release-branch-1.2"

	updateSuccessTemplateConstant = "UPDATED: %s\n"
)

// CommandBuilder assembles the Cobra command for built branch updates.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	WorktreeSynchronizer         shared.WorktreeSynchronizer
	ConfirmationPrompter         shared.ConfirmationPrompter
	TextPrompter                 shared.TextPrompter
	StagingAreaFactory           StagingAreaFactory
	WorkingDirectory             string
}

// Build constructs the update command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	logger := resolveLogger(builder.LoggerProvider)
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := shared.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := builder.resolveRepositoryManager(gitExecutor)
	if managerError != nil {
		return managerError
	}

	worktreeSynchronizer, synchronizerError := builder.resolveWorktreeSynchronizer(gitExecutor)
	if synchronizerError != nil {
		return synchronizerError
	}

	workingDirectory, workingDirectoryError := builder.resolveWorkingDirectory()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	promptOutput := utils.NewFlushingWriter(command.OutOrStdout())
	confirmationPrompter := builder.ConfirmationPrompter
	if confirmationPrompter == nil {
		confirmationPrompter = prompt.NewIOConfirmationPrompter(command.InOrStdin(), promptOutput)
	}
	textPrompter := builder.TextPrompter
	if textPrompter == nil {
		textPrompter = prompt.NewIOTextPrompter(command.InOrStdin(), promptOutput)
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:               logger,
		RepositoryManager:    repositoryManager,
		WorktreeSynchronizer: worktreeSynchronizer,
		ConfirmationPrompter: confirmationPrompter,
		TextPrompter:         textPrompter,
		OutputWriter:         command.OutOrStdout(),
		StagingAreaFactory:   builder.StagingAreaFactory,
	})
	if serviceError != nil {
		return serviceError
	}

	targetBranch := ""
	if len(arguments) > 0 {
		targetBranch = strings.TrimSpace(arguments[0])
	}

	result, updateError := service.Update(command.Context(), Options{
		RepositoryPath:  workingDirectory,
		TargetBranch:    targetBranch,
		RemoteName:      configuration.RemoteName,
		BranchPrefix:    configuration.BranchPrefix,
		CommitMessage:   configuration.CommitMessage,
		ExcludePatterns: configuration.ExcludePatterns,
	})
	if updateError != nil {
		return updateError
	}

	fmt.Fprintf(command.OutOrStdout(), updateSuccessTemplateConstant, result.BranchName)
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveRepositoryManager(gitExecutor shared.GitExecutor) (shared.GitRepositoryManager, error) {
	if builder.RepositoryManager != nil {
		return builder.RepositoryManager, nil
	}
	return gitrepo.NewRepositoryManager(gitExecutor)
}

func (builder *CommandBuilder) resolveWorktreeSynchronizer(gitExecutor shared.GitExecutor) (shared.WorktreeSynchronizer, error) {
	if builder.WorktreeSynchronizer != nil {
		return builder.WorktreeSynchronizer, nil
	}
	return mirror.NewDirectoryMirror(gitExecutor)
}

func (builder *CommandBuilder) resolveWorkingDirectory() (string, error) {
	if len(strings.TrimSpace(builder.WorkingDirectory)) > 0 {
		return builder.WorkingDirectory, nil
	}
	return os.Getwd()
}
