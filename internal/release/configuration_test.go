package release_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/release"
	"github.com/temirov/relbranch/internal/shared"
)

func TestDefaultConfigurationValuesUsePrefixedKeys(t *testing.T) {
	values := release.DefaultConfigurationValues("tools.release")

	require.Equal(t, "origin", values["tools.release.remote"])
	require.Equal(t, "master", values["tools.release.base_branch"])
	require.Equal(t, "release-branch-", values["tools.release.branch_prefix"])
	require.Equal(t, string(shared.BranchMatchPolicySubstring), values["tools.release.match_policy"])
}

func TestCommandConfigurationSanitize(t *testing.T) {
	testCases := []struct {
		name          string
		configuration release.CommandConfiguration
		expected      release.CommandConfiguration
	}{
		{
			name:          "empty values fall back to defaults",
			configuration: release.CommandConfiguration{},
			expected:      release.DefaultCommandConfiguration(),
		},
		{
			name: "whitespace values fall back to defaults",
			configuration: release.CommandConfiguration{
				RemoteName:   "  ",
				BaseBranch:   "\t",
				BranchPrefix: " ",
				MatchPolicy:  "  ",
			},
			expected: release.DefaultCommandConfiguration(),
		},
		{
			name: "explicit values are trimmed and preserved",
			configuration: release.CommandConfiguration{
				RemoteName:   " upstream ",
				BaseBranch:   " main ",
				BranchPrefix: " rel- ",
				MatchPolicy:  " exact ",
			},
			expected: release.CommandConfiguration{
				RemoteName:   "upstream",
				BaseBranch:   "main",
				BranchPrefix: "rel-",
				MatchPolicy:  string(shared.BranchMatchPolicyExact),
			},
		},
		{
			name: "unknown match policy falls back to substring",
			configuration: release.CommandConfiguration{
				RemoteName:   "origin",
				BaseBranch:   "master",
				BranchPrefix: "release-branch-",
				MatchPolicy:  "fuzzy",
			},
			expected: release.DefaultCommandConfiguration(),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}
