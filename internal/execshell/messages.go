package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	argumentFlagPrefixConstant              = "-"
)

const (
	gitStatusSubcommandNameConstant       = "status"
	gitCheckoutSubcommandNameConstant     = "checkout"
	gitFetchSubcommandNameConstant        = "fetch"
	gitPushSubcommandNameConstant         = "push"
	gitLSRemoteSubcommandNameConstant     = "ls-remote"
	gitCloneSubcommandNameConstant        = "clone"
	gitAddSubcommandNameConstant          = "add"
	gitCommitSubcommandNameConstant       = "commit"
	gitRemoteSubcommandNameConstant       = "remote"
	gitRemoteGetURLSubcommandNameConstant = "get-url"
	gitMessageFlagConstant                = "-m"
	rsyncDeleteFlagConstant               = "--delete"
)

const (
	gitStatusStartTemplateConstant            = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant          = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant          = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant = "Unable to review working tree status in %s: %s"

	gitCheckoutStartTemplateConstant            = "Switching %s to %s"
	gitCheckoutSuccessTemplateConstant          = "%s now on %s"
	gitCheckoutFailureTemplateConstant          = "Failed to switch %s to %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplateConstant = "Unable to switch %s to %s: %s"

	gitFetchStartTemplateConstant                       = "Fetching %s from %s in %s"
	gitFetchWithoutRefsStartTemplateConstant            = "Fetching from %s in %s"
	gitFetchSuccessTemplateConstant                     = "Fetched %s from %s in %s"
	gitFetchWithoutRefsSuccessTemplateConstant          = "Fetched from %s in %s"
	gitFetchFailureTemplateConstant                     = "Failed to fetch %s from %s in %s (exit code %d%s)"
	gitFetchWithoutRefsFailureTemplateConstant          = "Failed to fetch from %s in %s (exit code %d%s)"
	gitFetchExecutionFailureTemplateConstant            = "Unable to fetch %s from %s in %s: %s"
	gitFetchWithoutRefsExecutionFailureTemplateConstant = "Unable to fetch from %s in %s: %s"
	gitFetchAllRemotesLabelConstant                     = "all remotes"

	gitPushStartTemplateConstant            = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant          = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant          = "Failed to push %s to %s from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant = "Unable to push %s to %s from %s: %s"

	gitLSRemoteHeadsStartTemplateConstant            = "Listing branches on %s from %s"
	gitLSRemoteHeadsSuccessTemplateConstant          = "Listed branches on %s from %s"
	gitLSRemoteHeadsFailureTemplateConstant          = "Failed to list branches on %s from %s (exit code %d%s)"
	gitLSRemoteHeadsExecutionFailureTemplateConstant = "Unable to list branches on %s from %s: %s"

	gitCloneStartTemplateConstant            = "Cloning %s into %s"
	gitCloneSuccessTemplateConstant          = "Cloned %s into %s"
	gitCloneFailureTemplateConstant          = "Failed to clone %s into %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant = "Unable to clone %s into %s: %s"

	gitAddStartTemplateConstant            = "Staging %s in %s"
	gitAddSuccessTemplateConstant          = "Staged %s in %s"
	gitAddFailureTemplateConstant          = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant = "Unable to stage %s in %s: %s"

	gitCommitStartTemplateConstant            = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant          = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant          = "Failed to create commit in %s with message %q (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant = "Unable to create commit in %s with message %q: %s"

	gitRemoteLookupStartTemplateConstant            = "Checking %s remote for %s"
	gitRemoteLookupSuccessTemplateConstant          = "Resolved %s remote for %s"
	gitRemoteLookupFailureTemplateConstant          = "Failed to read %s remote for %s (exit code %d%s)"
	gitRemoteLookupExecutionFailureTemplateConstant = "Unable to read %s remote for %s: %s"

	rsyncMirrorStartTemplateConstant            = "Mirroring %s onto %s"
	rsyncMirrorSuccessTemplateConstant          = "Mirrored %s onto %s"
	rsyncMirrorFailureTemplateConstant          = "Failed to mirror %s onto %s (exit code %d%s)"
	rsyncMirrorExecutionFailureTemplateConstant = "Unable to mirror %s onto %s: %s"
	rsyncCopyStartTemplateConstant              = "Copying %s to %s"
	rsyncCopySuccessTemplateConstant            = "Copied %s to %s"
	rsyncCopyFailureTemplateConstant            = "Failed to copy %s to %s (exit code %d%s)"
	rsyncCopyExecutionFailureTemplateConstant   = "Unable to copy %s to %s: %s"
)

// CommandMessageFormatter renders human-readable lifecycle messages for shell commands.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, messageStageStart, ExecutionResult{}, nil)
}

// BuildSuccessMessage formats the message describing a command that completed successfully.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, messageStageSuccess, ExecutionResult{}, nil)
}

// BuildFailureMessage formats the message describing a command that exited with a non-zero code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, messageStageFailure, result, nil)
}

// BuildExecutionFailureMessage formats the message describing a command that could not run at all.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, messageStageExecutionFailure, ExecutionResult{}, failure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, stage messageStage, result ExecutionResult, failure error) string {
	switch command.Name {
	case CommandGit:
		return formatter.buildGitMessage(command, stage, result, failure)
	case CommandRsync:
		return formatter.buildRsyncMessage(command, stage, result, failure)
	default:
		return formatter.buildGenericMessage(command, stage, result, failure)
	}
}

func (formatter CommandMessageFormatter) buildGitMessage(command ShellCommand, stage messageStage, result ExecutionResult, failure error) string {
	workingDirectory := formatter.workingDirectoryLabel(command)
	positionalArguments := formatter.positionalArguments(command.Details.Arguments)
	if len(positionalArguments) == 0 {
		return formatter.buildGenericMessage(command, stage, result, failure)
	}

	subcommand := positionalArguments[0]
	operands := positionalArguments[1:]

	switch subcommand {
	case gitStatusSubcommandNameConstant:
		return formatter.renderSingleTarget(stage, result, failure, workingDirectory,
			gitStatusStartTemplateConstant, gitStatusSuccessTemplateConstant, gitStatusFailureTemplateConstant, gitStatusExecutionFailureTemplateConstant)
	case gitCheckoutSubcommandNameConstant:
		reference := formatter.firstOrFallback(operands)
		return formatter.renderPair(stage, result, failure, workingDirectory, reference,
			gitCheckoutStartTemplateConstant, gitCheckoutSuccessTemplateConstant, gitCheckoutFailureTemplateConstant, gitCheckoutExecutionFailureTemplateConstant)
	case gitFetchSubcommandNameConstant:
		return formatter.renderFetch(stage, result, failure, workingDirectory, operands)
	case gitPushSubcommandNameConstant:
		remoteName := formatter.firstOrFallback(operands)
		references := formatter.joinOrFallback(operands[min(1, len(operands)):])
		return formatter.renderTriple(stage, result, failure, references, remoteName, workingDirectory,
			gitPushStartTemplateConstant, gitPushSuccessTemplateConstant, gitPushFailureTemplateConstant, gitPushExecutionFailureTemplateConstant)
	case gitLSRemoteSubcommandNameConstant:
		remoteName := formatter.firstOrFallback(operands)
		return formatter.renderPair(stage, result, failure, remoteName, workingDirectory,
			gitLSRemoteHeadsStartTemplateConstant, gitLSRemoteHeadsSuccessTemplateConstant, gitLSRemoteHeadsFailureTemplateConstant, gitLSRemoteHeadsExecutionFailureTemplateConstant)
	case gitCloneSubcommandNameConstant:
		source := formatter.firstOrFallback(operands)
		destination := fallbackUnknownValueLabelConstant
		if len(operands) > 1 {
			destination = operands[len(operands)-1]
		}
		return formatter.renderPair(stage, result, failure, source, destination,
			gitCloneStartTemplateConstant, gitCloneSuccessTemplateConstant, gitCloneFailureTemplateConstant, gitCloneExecutionFailureTemplateConstant)
	case gitAddSubcommandNameConstant:
		target := formatter.joinOrFallback(operands)
		if len(operands) == 0 {
			target = formatter.joinOrFallback(formatter.flagArguments(command.Details.Arguments[1:]))
		}
		return formatter.renderPair(stage, result, failure, target, workingDirectory,
			gitAddStartTemplateConstant, gitAddSuccessTemplateConstant, gitAddFailureTemplateConstant, gitAddExecutionFailureTemplateConstant)
	case gitCommitSubcommandNameConstant:
		commitMessage := formatter.commitMessage(command.Details.Arguments)
		return formatter.renderPair(stage, result, failure, workingDirectory, commitMessage,
			gitCommitStartTemplateConstant, gitCommitSuccessTemplateConstant, gitCommitFailureTemplateConstant, gitCommitExecutionFailureTemplateConstant)
	case gitRemoteSubcommandNameConstant:
		if len(operands) > 0 && operands[0] == gitRemoteGetURLSubcommandNameConstant {
			remoteName := formatter.firstOrFallback(operands[1:])
			return formatter.renderPair(stage, result, failure, remoteName, workingDirectory,
				gitRemoteLookupStartTemplateConstant, gitRemoteLookupSuccessTemplateConstant, gitRemoteLookupFailureTemplateConstant, gitRemoteLookupExecutionFailureTemplateConstant)
		}
		return formatter.buildGenericMessage(command, stage, result, failure)
	default:
		return formatter.buildGenericMessage(command, stage, result, failure)
	}
}

func (formatter CommandMessageFormatter) buildRsyncMessage(command ShellCommand, stage messageStage, result ExecutionResult, failure error) string {
	positionalArguments := formatter.positionalArguments(command.Details.Arguments)
	if len(positionalArguments) < 2 {
		return formatter.buildGenericMessage(command, stage, result, failure)
	}

	source := positionalArguments[len(positionalArguments)-2]
	destination := positionalArguments[len(positionalArguments)-1]

	if formatter.containsFlag(command.Details.Arguments, rsyncDeleteFlagConstant) {
		return formatter.renderPair(stage, result, failure, source, destination,
			rsyncMirrorStartTemplateConstant, rsyncMirrorSuccessTemplateConstant, rsyncMirrorFailureTemplateConstant, rsyncMirrorExecutionFailureTemplateConstant)
	}
	return formatter.renderPair(stage, result, failure, source, destination,
		rsyncCopyStartTemplateConstant, rsyncCopySuccessTemplateConstant, rsyncCopyFailureTemplateConstant, rsyncCopyExecutionFailureTemplateConstant)
}

func (formatter CommandMessageFormatter) renderFetch(stage messageStage, result ExecutionResult, failure error, workingDirectory string, operands []string) string {
	if len(operands) == 0 {
		return formatter.renderPair(stage, result, failure, gitFetchAllRemotesLabelConstant, workingDirectory,
			gitFetchWithoutRefsStartTemplateConstant, gitFetchWithoutRefsSuccessTemplateConstant, gitFetchWithoutRefsFailureTemplateConstant, gitFetchWithoutRefsExecutionFailureTemplateConstant)
	}
	remoteName := operands[0]
	references := operands[1:]
	if len(references) == 0 {
		return formatter.renderPair(stage, result, failure, remoteName, workingDirectory,
			gitFetchWithoutRefsStartTemplateConstant, gitFetchWithoutRefsSuccessTemplateConstant, gitFetchWithoutRefsFailureTemplateConstant, gitFetchWithoutRefsExecutionFailureTemplateConstant)
	}
	return formatter.renderTriple(stage, result, failure, formatter.joinOrFallback(references), remoteName, workingDirectory,
		gitFetchStartTemplateConstant, gitFetchSuccessTemplateConstant, gitFetchFailureTemplateConstant, gitFetchExecutionFailureTemplateConstant)
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, stage messageStage, result ExecutionResult, failure error) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.standardErrorSuffix(result))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.failureMessage(failure))
	}
}

func (formatter CommandMessageFormatter) renderSingleTarget(stage messageStage, result ExecutionResult, failure error, target string, startTemplate string, successTemplate string, failureTemplate string, executionFailureTemplate string) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, target)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, target)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, target, result.ExitCode, formatter.standardErrorSuffix(result))
	default:
		return fmt.Sprintf(executionFailureTemplate, target, formatter.failureMessage(failure))
	}
}

func (formatter CommandMessageFormatter) renderPair(stage messageStage, result ExecutionResult, failure error, firstValue string, secondValue string, startTemplate string, successTemplate string, failureTemplate string, executionFailureTemplate string) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, firstValue, secondValue)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, firstValue, secondValue)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, firstValue, secondValue, result.ExitCode, formatter.standardErrorSuffix(result))
	default:
		return fmt.Sprintf(executionFailureTemplate, firstValue, secondValue, formatter.failureMessage(failure))
	}
}

func (formatter CommandMessageFormatter) renderTriple(stage messageStage, result ExecutionResult, failure error, firstValue string, secondValue string, thirdValue string, startTemplate string, successTemplate string, failureTemplate string, executionFailureTemplate string) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, firstValue, secondValue, thirdValue)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, firstValue, secondValue, thirdValue)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, firstValue, secondValue, thirdValue, result.ExitCode, formatter.standardErrorSuffix(result))
	default:
		return fmt.Sprintf(executionFailureTemplate, firstValue, secondValue, thirdValue, formatter.failureMessage(failure))
	}
}

func (formatter CommandMessageFormatter) positionalArguments(arguments []string) []string {
	positional := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if strings.HasPrefix(argument, argumentFlagPrefixConstant) {
			continue
		}
		positional = append(positional, argument)
	}
	return positional
}

func (formatter CommandMessageFormatter) flagArguments(arguments []string) []string {
	flags := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if strings.HasPrefix(argument, argumentFlagPrefixConstant) {
			flags = append(flags, argument)
		}
	}
	return flags
}

func (formatter CommandMessageFormatter) containsFlag(arguments []string, flag string) bool {
	for _, argument := range arguments {
		if argument == flag {
			return true
		}
	}
	return false
}

func (formatter CommandMessageFormatter) commitMessage(arguments []string) string {
	for argumentIndex, argument := range arguments {
		if argument == gitMessageFlagConstant && argumentIndex+1 < len(arguments) {
			return arguments[argumentIndex+1]
		}
	}
	return fallbackUnknownValueLabelConstant
}

func (formatter CommandMessageFormatter) firstOrFallback(values []string) string {
	if len(values) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return values[0]
}

func (formatter CommandMessageFormatter) joinOrFallback(values []string) string {
	if len(values) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return strings.Join(values, commandArgumentsJoinSeparatorConstant)
}

func (formatter CommandMessageFormatter) workingDirectoryLabel(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	workingDirectorySuffix := emptyStringConstant
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) > 0 {
		workingDirectorySuffix = fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) standardErrorSuffix(result ExecutionResult) string {
	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) failureMessage(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}
