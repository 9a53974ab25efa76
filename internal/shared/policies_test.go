package shared_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/shared"
)

func TestParseBranchMatchPolicyDefaultsToSubstring(t *testing.T) {
	require.Equal(t, shared.BranchMatchPolicySubstring, shared.ParseBranchMatchPolicy(""))
	require.Equal(t, shared.BranchMatchPolicySubstring, shared.ParseBranchMatchPolicy("substring"))
	require.Equal(t, shared.BranchMatchPolicySubstring, shared.ParseBranchMatchPolicy("unrecognized"))
	require.Equal(t, shared.BranchMatchPolicyExact, shared.ParseBranchMatchPolicy(" Exact "))
}

func TestBranchMatchPolicyFindCollision(t *testing.T) {
	remoteBranchNames := []string{"main", "release-branch-1.2-built", "release-branch-2.0"}

	testCases := []struct {
		name              string
		policy            shared.BranchMatchPolicy
		candidate         string
		expectedCollision string
		expectCollision   bool
	}{
		{
			name:              "substring_matches_built_variant",
			policy:            shared.BranchMatchPolicySubstring,
			candidate:         "release-branch-1.2",
			expectedCollision: "release-branch-1.2-built",
			expectCollision:   true,
		},
		{
			name:            "exact_ignores_built_variant",
			policy:          shared.BranchMatchPolicyExact,
			candidate:       "release-branch-1.2",
			expectCollision: false,
		},
		{
			name:              "exact_matches_identical_name",
			policy:            shared.BranchMatchPolicyExact,
			candidate:         "release-branch-2.0",
			expectedCollision: "release-branch-2.0",
			expectCollision:   true,
		},
		{
			name:            "substring_reports_no_collision",
			policy:          shared.BranchMatchPolicySubstring,
			candidate:       "release-branch-3.1",
			expectCollision: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			collision, found := testCase.policy.FindCollision(remoteBranchNames, testCase.candidate)
			require.Equal(t, testCase.expectCollision, found)
			require.Equal(t, testCase.expectedCollision, collision)
		})
	}
}
