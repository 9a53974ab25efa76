package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForFetchIncludesRemoteAndReferences(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"fetch", "--prune", "origin", "feature"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Fetching feature from origin in /workspace/repo", message)
}

func TestBuildStartedMessageForFetchWithoutRemoteUsesAllRemotesLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"fetch", "--prune"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Fetching from all remotes in /workspace/repo", message)
}

func TestBuildStartedMessageForMirrorRsyncDescribesMirroring(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandRsync,
		Details: CommandDetails{
			Arguments: []string{"--archive", "--delete", "--exclude=.git", "/tmp/stage/", "/tmp/clone/"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Mirroring /tmp/stage/ onto /tmp/clone/", message)
}

func TestBuildSuccessMessageForCopyRsyncDescribesCopying(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandRsync,
		Details: CommandDetails{
			Arguments: []string{"--archive", "--exclude=.git", "/workspace/repo/", "/tmp/stage/"},
		},
	}

	message := formatter.BuildSuccessMessage(command)

	require.Equal(t, "Copied /workspace/repo/ to /tmp/stage/", message)
}

func TestBuildFailureMessageForCloneIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"clone", "--depth=1", "--branch=release-branch-1.2", "--single-branch", "git@github.com:owner/repo.git", "/tmp/clone"},
		},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 128, StandardError: "fatal: Remote branch not found"})

	require.Equal(t, "Failed to clone git@github.com:owner/repo.git into /tmp/clone (exit code 128: fatal: Remote branch not found)", message)
}

func TestBuildStartedMessageForCommitQuotesMessage(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"commit", "-m", "automated build"},
			WorkingDirectory: "/tmp/clone",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Creating commit in /tmp/clone with message \"automated build\"", message)
}
