package release_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/release"
)

func TestCommandBuilderBuild(t *testing.T) {
	builder := &release.CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	require.Equal(t, "new", command.Use)
	require.NotNil(t, command.Flags().Lookup("version"))
	require.NotNil(t, command.Flags().Lookup("base"))
}

func TestCommandCreatesBranchFromFlags(t *testing.T) {
	manager := &recordingRepositoryManager{remoteBranchNames: []string{"main"}}
	confirmation := &scriptedConfirmationPrompter{responses: []bool{true, false}}
	builder := &release.CommandBuilder{
		ConfigurationProvider: func() release.CommandConfiguration { return release.DefaultCommandConfiguration() },
		RepositoryManager:     manager,
		ConfirmationPrompter:  confirmation,
		TextPrompter:          &scriptedTextPrompter{},
		WorkingDirectory:      "/workspace/repo",
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	command.SetContext(context.Background())
	require.NoError(t, command.Flags().Set("version", "3.1"))
	require.NoError(t, command.Flags().Set("base", "main"))

	require.NoError(t, command.RunE(command, nil))
	require.Equal(t, []string{"release-branch-3.1"}, manager.pushedBranches)
	require.Contains(t, outputBuffer.String(), "CREATED: release-branch-3.1 (from main)")
}

func TestCommandRejectsPositionalArguments(t *testing.T) {
	builder := &release.CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	require.Error(t, command.Args(command, []string{"unexpected"}))
}

func TestCommandSurfacesCollisionErrors(t *testing.T) {
	manager := &recordingRepositoryManager{remoteBranchNames: []string{"release-branch-3.1"}}
	builder := &release.CommandBuilder{
		ConfigurationProvider: func() release.CommandConfiguration { return release.DefaultCommandConfiguration() },
		RepositoryManager:     manager,
		ConfirmationPrompter:  &scriptedConfirmationPrompter{},
		TextPrompter:          &scriptedTextPrompter{},
		WorkingDirectory:      "/workspace/repo",
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetContext(context.Background())
	require.NoError(t, command.Flags().Set("version", "3.1"))

	runError := command.RunE(command, nil)

	var collisionError release.BranchCollisionError
	require.ErrorAs(t, runError, &collisionError)
	require.Empty(t, manager.pushedBranches)
}
