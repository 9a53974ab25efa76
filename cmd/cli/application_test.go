package cli_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/relbranch/cmd/cli"
)

const (
	mapstructureTagNameConstant        = "mapstructure"
	embeddedDefaultRemoteNameConstant  = "origin"
	embeddedDefaultBranchPrefixName    = "release-branch-"
	embeddedDefaultBaseBranchConstant  = "master"
	embeddedDefaultMatchPolicyConstant = "substring"
	embeddedDefaultCommitMessage       = "automated build"
)

func decodeEmbeddedConfiguration(t *testing.T) cli.ApplicationConfiguration {
	t.Helper()

	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", configurationType)
	require.NotEmpty(t, configurationData)

	rawConfiguration := map[string]any{}
	require.NoError(t, yaml.Unmarshal(configurationData, &rawConfiguration))

	var decodedConfiguration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: mapstructureTagNameConstant,
		Result:  &decodedConfiguration,
	})
	require.NoError(t, decoderError)
	require.NoError(t, decoder.Decode(rawConfiguration))

	return decodedConfiguration
}

func TestEmbeddedDefaultConfigurationCoversBothCommands(t *testing.T) {
	configuration := decodeEmbeddedConfiguration(t)

	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Equal(t, "console", configuration.Common.LogFormat)

	require.Equal(t, embeddedDefaultRemoteNameConstant, configuration.Tools.Release.RemoteName)
	require.Equal(t, embeddedDefaultBaseBranchConstant, configuration.Tools.Release.BaseBranch)
	require.Equal(t, embeddedDefaultBranchPrefixName, configuration.Tools.Release.BranchPrefix)
	require.Equal(t, embeddedDefaultMatchPolicyConstant, configuration.Tools.Release.MatchPolicy)

	require.Equal(t, embeddedDefaultRemoteNameConstant, configuration.Tools.Update.RemoteName)
	require.Equal(t, embeddedDefaultBranchPrefixName, configuration.Tools.Update.BranchPrefix)
	require.Equal(t, embeddedDefaultCommitMessage, configuration.Tools.Update.CommitMessage)
	require.Equal(t, []string{".git", "node_modules"}, configuration.Tools.Update.ExcludePatterns)
}

func TestEmbeddedDefaultConfigurationReturnsCopies(t *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, firstCopy, secondCopy)

	firstCopy[0] = '#'
	require.NotEqual(t, firstCopy[0], secondCopy[0])
}

func TestNormalizeLegacyAliases(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "NewAliasBecomesSubcommand",
			input:    []string{"-n"},
			expected: []string{"new"},
		},
		{
			name:     "UpdateAliasKeepsTrailingArguments",
			input:    []string{"-u", "release-branch-1.2"},
			expected: []string{"update", "release-branch-1.2"},
		},
		{
			name:     "SubcommandNamesPassThrough",
			input:    []string{"new", "--version", "1.2"},
			expected: []string{"new", "--version", "1.2"},
		},
		{
			name:     "AliasAfterFirstPositionUntouched",
			input:    []string{"update", "-u"},
			expected: []string{"update", "-u"},
		},
		{
			name:     "EmptyArgumentsPassThrough",
			input:    nil,
			expected: nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, cli.NormalizeLegacyAliases(testCase.input))
		})
	}
}
