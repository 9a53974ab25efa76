package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/prompt"
)

func TestConfirmInterpretsResponses(t *testing.T) {
	testCases := []struct {
		name            string
		response        string
		expectConfirmed bool
	}{
		{name: "short_affirmative", response: "y\n", expectConfirmed: true},
		{name: "long_affirmative", response: "YES\n", expectConfirmed: true},
		{name: "mixed_case", response: "Yes\n", expectConfirmed: true},
		{name: "negative", response: "n\n", expectConfirmed: false},
		{name: "empty", response: "\n", expectConfirmed: false},
		{name: "unrelated_text", response: "push it\n", expectConfirmed: false},
		{name: "eof_without_newline", response: "y", expectConfirmed: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			output := &bytes.Buffer{}
			prompter := prompt.NewIOConfirmationPrompter(strings.NewReader(testCase.response), output)

			confirmed, confirmError := prompter.Confirm("Push the new branch? [y/N] ")
			require.NoError(t, confirmError)
			require.Equal(t, testCase.expectConfirmed, confirmed)
			require.Equal(t, "Push the new branch? [y/N] ", output.String())
		})
	}
}

func TestPromptTextReturnsTrimmedResponse(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := prompt.NewIOTextPrompter(strings.NewReader("  1.2  \n"), output)

	response, promptError := prompter.PromptText("Version: ", "")
	require.NoError(t, promptError)
	require.Equal(t, "1.2", response)
	require.Equal(t, "Version: ", output.String())
}

func TestPromptTextFallsBackToDefaultOnEmptyInput(t *testing.T) {
	prompter := prompt.NewIOTextPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	response, promptError := prompter.PromptText("Base branch [master]: ", "master")
	require.NoError(t, promptError)
	require.Equal(t, "master", response)
}
