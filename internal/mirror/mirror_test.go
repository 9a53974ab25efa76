package mirror_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/execshell"
	"github.com/temirov/relbranch/internal/mirror"
)

type recordingRsyncExecutor struct {
	recordedCommands []execshell.CommandDetails
	executionError   error
}

func (executor *recordingRsyncExecutor) ExecuteRsync(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return execshell.ExecutionResult{}, nil
}

func TestNewDirectoryMirrorRequiresExecutor(t *testing.T) {
	_, creationError := mirror.NewDirectoryMirror(nil)
	require.ErrorIs(t, creationError, mirror.ErrExecutorNotConfigured)
}

func TestCopyTreeBuildsArchiveCopy(t *testing.T) {
	executor := &recordingRsyncExecutor{}
	directoryMirror, creationError := mirror.NewDirectoryMirror(executor)
	require.NoError(t, creationError)

	copyError := directoryMirror.CopyTree(context.Background(), "/workspace/repo", "/tmp/stage", []string{".git", "node_modules", " "})
	require.NoError(t, copyError)
	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t, []string{
		"--archive",
		"--exclude=.git",
		"--exclude=node_modules",
		"/workspace/repo/",
		"/tmp/stage/",
	}, executor.recordedCommands[0].Arguments)
}

func TestMirrorTreeAddsDeleteFlag(t *testing.T) {
	executor := &recordingRsyncExecutor{}
	directoryMirror, creationError := mirror.NewDirectoryMirror(executor)
	require.NoError(t, creationError)

	mirrorError := directoryMirror.MirrorTree(context.Background(), "/tmp/stage/", "/tmp/clone", []string{".git"})
	require.NoError(t, mirrorError)
	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t, []string{
		"--archive",
		"--delete",
		"--exclude=.git",
		"/tmp/stage/",
		"/tmp/clone/",
	}, executor.recordedCommands[0].Arguments)
}
