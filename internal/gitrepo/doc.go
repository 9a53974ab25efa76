// Package gitrepo provides repository-level git operations built on the
// execshell command layer, along with remote URL parsing helpers.
package gitrepo
