package build_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/build"
)

func TestDefaultConfigurationValuesUsePrefixedKeys(t *testing.T) {
	values := build.DefaultConfigurationValues("tools.update")

	require.Equal(t, "origin", values["tools.update.remote"])
	require.Equal(t, "release-branch-", values["tools.update.branch_prefix"])
	require.Equal(t, "automated build", values["tools.update.commit_message"])
	require.Equal(t, []string{".git", "node_modules"}, values["tools.update.exclude_patterns"])
}

func TestCommandConfigurationSanitize(t *testing.T) {
	testCases := []struct {
		name          string
		configuration build.CommandConfiguration
		expected      build.CommandConfiguration
	}{
		{
			name:          "empty values fall back to defaults",
			configuration: build.CommandConfiguration{},
			expected:      build.DefaultCommandConfiguration(),
		},
		{
			name: "explicit values are trimmed and preserved",
			configuration: build.CommandConfiguration{
				RemoteName:      " upstream ",
				BranchPrefix:    " rel- ",
				CommitMessage:   " rebuild ",
				ExcludePatterns: []string{" .git ", "", "dist"},
			},
			expected: build.CommandConfiguration{
				RemoteName:      "upstream",
				BranchPrefix:    "rel-",
				CommitMessage:   "rebuild",
				ExcludePatterns: []string{".git", "dist"},
			},
		},
		{
			name: "blank exclude patterns fall back to defaults",
			configuration: build.CommandConfiguration{
				RemoteName:      "origin",
				BranchPrefix:    "release-branch-",
				CommitMessage:   "automated build",
				ExcludePatterns: []string{" ", ""},
			},
			expected: build.DefaultCommandConfiguration(),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}
