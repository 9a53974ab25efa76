package release

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/relbranch/internal/gitrepo"
	"github.com/temirov/relbranch/internal/prompt"
	"github.com/temirov/relbranch/internal/shared"
	"github.com/temirov/relbranch/internal/utils"
)

const (
	commandUseConstant              = "new"
	commandShortDescriptionConstant = "Create a new release branch from the base branch"
	commandLongDescriptionConstant  = "new derives a release branch name from a version token, verifies the name is free on the remote, creates the branch from the base branch, and pushes it with upstream tracking after confirmation."
	commandExampleConstant          = "relbranch new --version 1.2 --base master"

	versionFlagNameConstant  = "version"
	versionFlagUsageConstant = "Version token used to derive the branch name (skips the prompt)"
	baseFlagNameConstant     = "base"
	baseFlagUsageConstant    = "Base branch to create the release branch from (skips the prompt)"

	creationSuccessTemplateConstant = "CREATED: %s (from %s)\n"
)

// CommandBuilder assembles the Cobra command for release branch creation.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	ConfirmationPrompter         shared.ConfirmationPrompter
	TextPrompter                 shared.TextPrompter
	WorkingDirectory             string
}

// Build constructs the new command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	command.Flags().String(versionFlagNameConstant, "", versionFlagUsageConstant)
	command.Flags().String(baseFlagNameConstant, "", baseFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
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
		ConfirmationPrompter: confirmationPrompter,
		TextPrompter:         textPrompter,
		OutputWriter:         command.OutOrStdout(),
	})
	if serviceError != nil {
		return serviceError
	}

	versionFlagValue, _ := command.Flags().GetString(versionFlagNameConstant)
	baseFlagValue, _ := command.Flags().GetString(baseFlagNameConstant)

	result, creationError := service.Create(command.Context(), Options{
		RepositoryPath:    workingDirectory,
		Version:           strings.TrimSpace(versionFlagValue),
		BaseBranch:        strings.TrimSpace(baseFlagValue),
		DefaultBaseBranch: configuration.BaseBranch,
		RemoteName:        configuration.RemoteName,
		BranchPrefix:      configuration.BranchPrefix,
		MatchPolicy:       shared.ParseBranchMatchPolicy(configuration.MatchPolicy),
	})
	if creationError != nil {
		return creationError
	}

	fmt.Fprintf(command.OutOrStdout(), creationSuccessTemplateConstant, result.BranchName, result.BaseBranch)
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

func (builder *CommandBuilder) resolveWorkingDirectory() (string, error) {
	if len(strings.TrimSpace(builder.WorkingDirectory)) > 0 {
		return builder.WorkingDirectory, nil
	}
	return os.Getwd()
}
