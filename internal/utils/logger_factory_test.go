package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/utils"
)

func TestCreateLoggerSupportedCombinations(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  utils.LogLevel
		logFormat utils.LogFormat
	}{
		{name: "debug_structured", logLevel: utils.LogLevelDebug, logFormat: utils.LogFormatStructured},
		{name: "info_console", logLevel: utils.LogLevelInfo, logFormat: utils.LogFormatConsole},
		{name: "warn_structured", logLevel: utils.LogLevelWarn, logFormat: utils.LogFormatStructured},
		{name: "error_console", logLevel: utils.LogLevelError, logFormat: utils.LogFormatConsole},
	}

	factory := utils.NewLoggerFactory()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			logger, creationError := factory.CreateLogger(testCase.logLevel, testCase.logFormat)
			require.NoError(t, creationError)
			require.NotNil(t, logger)
		})
	}
}

func TestCreateLoggerRejectsUnknownValues(t *testing.T) {
	factory := utils.NewLoggerFactory()

	_, levelError := factory.CreateLogger(utils.LogLevel("verbose"), utils.LogFormatStructured)
	require.Error(t, levelError)

	_, formatError := factory.CreateLogger(utils.LogLevelInfo, utils.LogFormat("plain"))
	require.Error(t, formatError)
}
