package build_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/build"
)

func TestCommandBuilderBuild(t *testing.T) {
	builder := &build.CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	require.Equal(t, "update [branch]", command.Use)
	require.NoError(t, command.Args(command, []string{"release-branch-1.2"}))
	require.Error(t, command.Args(command, []string{"one", "two"}))
}

func TestCommandUpdatesBranchFromArgument(t *testing.T) {
	manager := &recordingRepositoryManager{
		remoteBranchNames: []string{"release-branch-1.2"},
		remoteURL:         "git@github.com:acme/widget.git",
	}
	synchronizer := &recordingSynchronizer{manager: manager}
	stagingArea, stagingError := build.NewStagingArea()
	require.NoError(t, stagingError)
	t.Cleanup(func() { _ = stagingArea.Remove() })

	builder := &build.CommandBuilder{
		ConfigurationProvider: func() build.CommandConfiguration { return build.DefaultCommandConfiguration() },
		RepositoryManager:     manager,
		WorktreeSynchronizer:  synchronizer,
		ConfirmationPrompter:  &scriptedConfirmationPrompter{responses: []bool{true}},
		TextPrompter:          &scriptedTextPrompter{},
		StagingAreaFactory:    func() (*build.StagingArea, error) { return stagingArea, nil },
		WorkingDirectory:      "/workspace/repo",
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	command.SetContext(context.Background())

	require.NoError(t, command.RunE(command, []string{"release-branch-1.2"}))
	require.Equal(t, []string{"release-branch-1.2"}, manager.pushedBranches)
	require.Contains(t, outputBuffer.String(), "UPDATED: release-branch-1.2")
}

func TestCommandSurfacesDirtyWorktreeError(t *testing.T) {
	manager := &recordingRepositoryManager{
		cleanWorktrees:    map[string]bool{"/workspace/repo": false},
		remoteBranchNames: []string{"release-branch-1.2"},
	}
	synchronizer := &recordingSynchronizer{manager: manager}
	builder := &build.CommandBuilder{
		ConfigurationProvider: func() build.CommandConfiguration { return build.DefaultCommandConfiguration() },
		RepositoryManager:     manager,
		WorktreeSynchronizer:  synchronizer,
		ConfirmationPrompter:  &scriptedConfirmationPrompter{},
		TextPrompter:          &scriptedTextPrompter{},
		WorkingDirectory:      "/workspace/repo",
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetContext(context.Background())

	runError := command.RunE(command, []string{"release-branch-1.2"})
	require.ErrorIs(t, runError, build.ErrWorktreeDirty)
}
