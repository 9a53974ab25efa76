package build

import (
	"strings"

	"github.com/temirov/relbranch/internal/shared"
)

const (
	remoteConfigurationKeySuffixConstant          = ".remote"
	branchPrefixConfigurationKeySuffixConstant    = ".branch_prefix"
	commitMessageConfigurationKeySuffixConstant   = ".commit_message"
	excludePatternsConfigurationKeySuffixConstant = ".exclude_patterns"

	defaultCommitMessageConstant = "automated build"

	gitMetadataDirectoryConstant      = ".git"
	nodeDependenciesDirectoryConstant = "node_modules"
)

// CommandConfiguration captures configuration values for the built branch update command.
type CommandConfiguration struct {
	RemoteName      string   `mapstructure:"remote"`
	BranchPrefix    string   `mapstructure:"branch_prefix"`
	CommitMessage   string   `mapstructure:"commit_message"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
}

// DefaultCommandConfiguration provides baseline configuration values for built branch updates.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName:      shared.OriginRemoteNameConstant,
		BranchPrefix:    shared.ReleaseBranchPrefixConstant,
		CommitMessage:   defaultCommitMessageConstant,
		ExcludePatterns: []string{gitMetadataDirectoryConstant, nodeDependenciesDirectoryConstant},
	}
}

// DefaultConfigurationValues exposes the default values keyed for Viper registration.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + remoteConfigurationKeySuffixConstant:          defaults.RemoteName,
		configurationKeyPrefix + branchPrefixConfigurationKeySuffixConstant:    defaults.BranchPrefix,
		configurationKeyPrefix + commitMessageConfigurationKeySuffixConstant:   defaults.CommitMessage,
		configurationKeyPrefix + excludePatternsConfigurationKeySuffixConstant: defaults.ExcludePatterns,
	}
}

// Sanitize trims configuration values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.RemoteName = valueOrDefault(configuration.RemoteName, defaults.RemoteName)
	sanitized.BranchPrefix = valueOrDefault(configuration.BranchPrefix, defaults.BranchPrefix)
	sanitized.CommitMessage = valueOrDefault(configuration.CommitMessage, defaults.CommitMessage)
	sanitized.ExcludePatterns = sanitizePatterns(configuration.ExcludePatterns, defaults.ExcludePatterns)

	return sanitized
}

func valueOrDefault(value string, defaultValue string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return defaultValue
	}
	return trimmedValue
}

func sanitizePatterns(patterns []string, defaultPatterns []string) []string {
	sanitizedPatterns := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if len(trimmedPattern) == 0 {
			continue
		}
		sanitizedPatterns = append(sanitizedPatterns, trimmedPattern)
	}
	if len(sanitizedPatterns) == 0 {
		return defaultPatterns
	}
	return sanitizedPatterns
}
