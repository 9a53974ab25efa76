package shared

import "strings"

const (
	branchMatchPolicySubstringNameConstant = "substring"
	branchMatchPolicyExactNameConstant     = "exact"
)

// BranchMatchPolicy selects how candidate branch names are compared against the remote branch list.
//
// The historical behavior treats any remote branch containing the candidate as
// a collision, which also catches derived variants such as "-built" suffixes.
// Exact matching is available for operators who consider that a defect.
type BranchMatchPolicy string

// Supported branch match policies.
const (
	BranchMatchPolicySubstring BranchMatchPolicy = BranchMatchPolicy(branchMatchPolicySubstringNameConstant)
	BranchMatchPolicyExact     BranchMatchPolicy = BranchMatchPolicy(branchMatchPolicyExactNameConstant)
)

// ParseBranchMatchPolicy normalizes a textual policy value, defaulting to substring matching.
func ParseBranchMatchPolicy(value string) BranchMatchPolicy {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	if normalizedValue == branchMatchPolicyExactNameConstant {
		return BranchMatchPolicyExact
	}
	return BranchMatchPolicySubstring
}

// Matches reports whether the candidate collides with the provided remote branch name.
func (policy BranchMatchPolicy) Matches(remoteBranchName string, candidateBranchName string) bool {
	switch policy {
	case BranchMatchPolicyExact:
		return remoteBranchName == candidateBranchName
	default:
		return strings.Contains(remoteBranchName, candidateBranchName)
	}
}

// FindCollision returns the first remote branch colliding with the candidate under the policy.
func (policy BranchMatchPolicy) FindCollision(remoteBranchNames []string, candidateBranchName string) (string, bool) {
	for _, remoteBranchName := range remoteBranchNames {
		if policy.Matches(remoteBranchName, candidateBranchName) {
			return remoteBranchName, true
		}
	}
	return "", false
}
