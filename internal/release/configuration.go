package release

import (
	"strings"

	"github.com/temirov/relbranch/internal/shared"
)

const (
	remoteConfigurationKeySuffixConstant       = ".remote"
	baseBranchConfigurationKeySuffixConstant   = ".base_branch"
	branchPrefixConfigurationKeySuffixConstant = ".branch_prefix"
	matchPolicyConfigurationKeySuffixConstant  = ".match_policy"

	defaultBaseBranchNameConstant = "master"
)

// CommandConfiguration captures configuration values for the release branch command.
type CommandConfiguration struct {
	RemoteName   string `mapstructure:"remote"`
	BaseBranch   string `mapstructure:"base_branch"`
	BranchPrefix string `mapstructure:"branch_prefix"`
	MatchPolicy  string `mapstructure:"match_policy"`
}

// DefaultCommandConfiguration provides baseline configuration values for release branch creation.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName:   shared.OriginRemoteNameConstant,
		BaseBranch:   defaultBaseBranchNameConstant,
		BranchPrefix: shared.ReleaseBranchPrefixConstant,
		MatchPolicy:  string(shared.BranchMatchPolicySubstring),
	}
}

// DefaultConfigurationValues exposes the default values keyed for Viper registration.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + remoteConfigurationKeySuffixConstant:       defaults.RemoteName,
		configurationKeyPrefix + baseBranchConfigurationKeySuffixConstant:   defaults.BaseBranch,
		configurationKeyPrefix + branchPrefixConfigurationKeySuffixConstant: defaults.BranchPrefix,
		configurationKeyPrefix + matchPolicyConfigurationKeySuffixConstant:  defaults.MatchPolicy,
	}
}

// Sanitize trims configuration values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.RemoteName = valueOrDefault(configuration.RemoteName, defaults.RemoteName)
	sanitized.BaseBranch = valueOrDefault(configuration.BaseBranch, defaults.BaseBranch)
	sanitized.BranchPrefix = valueOrDefault(configuration.BranchPrefix, defaults.BranchPrefix)
	sanitized.MatchPolicy = string(shared.ParseBranchMatchPolicy(configuration.MatchPolicy))

	return sanitized
}

func valueOrDefault(value string, defaultValue string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return defaultValue
	}
	return trimmedValue
}
