package mirror

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/relbranch/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant = "rsync executor not configured"
	archiveFlagConstant                  = "--archive"
	deleteFlagConstant                   = "--delete"
	excludeFlagTemplateConstant          = "--exclude="
	trailingSlashConstant                = "/"
)

// ErrExecutorNotConfigured indicates the mirror was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// RsyncExecutor runs rsync commands on behalf of the directory mirror.
type RsyncExecutor interface {
	ExecuteRsync(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// DirectoryMirror copies and mirrors directory trees using rsync.
type DirectoryMirror struct {
	executor RsyncExecutor
}

// NewDirectoryMirror validates the executor and constructs a DirectoryMirror.
func NewDirectoryMirror(executor RsyncExecutor) (*DirectoryMirror, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &DirectoryMirror{executor: executor}, nil
}

// CopyTree recursively copies the source tree into the destination, honoring exclude patterns.
func (directoryMirror *DirectoryMirror) CopyTree(executionContext context.Context, sourcePath string, destinationPath string, excludePatterns []string) error {
	arguments := []string{archiveFlagConstant}
	arguments = appendExcludeArguments(arguments, excludePatterns)
	arguments = append(arguments, ensureTrailingSlash(sourcePath), ensureTrailingSlash(destinationPath))

	_, executionError := directoryMirror.executor.ExecuteRsync(executionContext, execshell.CommandDetails{Arguments: arguments})
	return executionError
}

// MirrorTree makes the destination an exact mirror of the source, deleting destination-only
// entries except those covered by exclude patterns.
func (directoryMirror *DirectoryMirror) MirrorTree(executionContext context.Context, sourcePath string, destinationPath string, excludePatterns []string) error {
	arguments := []string{archiveFlagConstant, deleteFlagConstant}
	arguments = appendExcludeArguments(arguments, excludePatterns)
	arguments = append(arguments, ensureTrailingSlash(sourcePath), ensureTrailingSlash(destinationPath))

	_, executionError := directoryMirror.executor.ExecuteRsync(executionContext, execshell.CommandDetails{Arguments: arguments})
	return executionError
}

func appendExcludeArguments(arguments []string, excludePatterns []string) []string {
	for _, excludePattern := range excludePatterns {
		trimmedPattern := strings.TrimSpace(excludePattern)
		if len(trimmedPattern) == 0 {
			continue
		}
		arguments = append(arguments, excludeFlagTemplateConstant+trimmedPattern)
	}
	return arguments
}

func ensureTrailingSlash(path string) string {
	if strings.HasSuffix(path, trailingSlashConstant) {
		return path
	}
	return path + trailingSlashConstant
}
