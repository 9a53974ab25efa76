package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/relbranch/internal/execshell"
	"github.com/temirov/relbranch/internal/ui"
)

func newObservedEventLogger() (*ui.ConsoleCommandEventLogger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zap.DebugLevel)
	return ui.NewConsoleCommandEventLogger(zap.New(observerCore)), observedLogs
}

func TestCommandStartedLogsInfoMessage(t *testing.T) {
	eventLogger, observedLogs := newObservedEventLogger()
	command := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"status"}, WorkingDirectory: "/workspace/repo"},
	}

	eventLogger.CommandStarted(command)

	logEntries := observedLogs.All()
	require.Len(t, logEntries, 1)
	require.Equal(t, zap.InfoLevel, logEntries[0].Level)
	require.Equal(t, "Reviewing working tree status in /workspace/repo", logEntries[0].Message)
}

func TestCommandCompletedUsesWarnForNonZeroExitCodes(t *testing.T) {
	eventLogger, observedLogs := newObservedEventLogger()
	command := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"push", "origin", "release-branch-1.2"}, WorkingDirectory: "/workspace/repo"},
	}

	eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 1, StandardError: "rejected"})

	logEntries := observedLogs.All()
	require.Len(t, logEntries, 1)
	require.Equal(t, zap.WarnLevel, logEntries[0].Level)
	require.Contains(t, logEntries[0].Message, "rejected")
}

func TestCommandExecutionFailedLogsErrorMessage(t *testing.T) {
	eventLogger, observedLogs := newObservedEventLogger()
	command := execshell.ShellCommand{Name: execshell.CommandRsync}

	eventLogger.CommandExecutionFailed(command, errors.New("binary missing"))

	logEntries := observedLogs.All()
	require.Len(t, logEntries, 1)
	require.Equal(t, zap.ErrorLevel, logEntries[0].Level)
	require.Contains(t, logEntries[0].Message, "binary missing")
}
