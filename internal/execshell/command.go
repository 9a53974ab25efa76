package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	gitExecutableNameConstant             = "git"
	rsyncExecutableNameConstant           = "rsync"
	loggerNotConfiguredMessageConstant    = "logger not configured"
	runnerNotConfiguredMessageConstant    = "command runner not configured"
	commandFailedTemplateConstant         = "%s exited with code %d%s"
	commandExecutionTemplateConstant      = "%s could not be executed: %s"
	standardErrorDetailTemplateConstant   = ": %s"
	commandLabelJoinSeparatorConstant     = " "
	emptyStandardErrorDetailConstant      = ""
	unknownExecutionFailureLabelConstant  = "unknown error"
	commandFailedErrorNamelessLabel       = "command"
	executionResultSuccessfulExitConstant = 0
)

// CommandName identifies an executable supported by the shell executor.
type CommandName string

// Supported executables.
const (
	CommandGit   CommandName = CommandName(gitExecutableNameConstant)
	CommandRsync CommandName = CommandName(rsyncExecutableNameConstant)
)

// CommandDetails describes the invocation parameters for a shell command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// Successful reports whether the command exited with a zero status.
func (result ExecutionResult) Successful() bool {
	return result.ExitCode == executionResultSuccessfulExitConstant
}

// Configuration errors returned by NewShellExecutor.
var (
	ErrLoggerNotConfigured        = errors.New(loggerNotConfiguredMessageConstant)
	ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)
)

// CommandFailedError indicates a command ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the command failure including any standard error detail.
func (failure CommandFailedError) Error() string {
	standardErrorDetail := emptyStandardErrorDetailConstant
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorDetail = fmt.Sprintf(standardErrorDetailTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, failure.commandLabel(), failure.Result.ExitCode, standardErrorDetail)
}

func (failure CommandFailedError) commandLabel() string {
	labelParts := []string{string(failure.Command.Name)}
	labelParts = append(labelParts, failure.Command.Details.Arguments...)
	label := strings.TrimSpace(strings.Join(labelParts, commandLabelJoinSeparatorConstant))
	if len(label) == 0 {
		return commandFailedErrorNamelessLabel
	}
	return label
}

// CommandExecutionError indicates the process could not be started or observed.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (failure CommandExecutionError) Error() string {
	causeMessage := unknownExecutionFailureLabelConstant
	if failure.Cause != nil {
		causeMessage = failure.Cause.Error()
	}
	return fmt.Sprintf(commandExecutionTemplateConstant, string(failure.Command.Name), causeMessage)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}
