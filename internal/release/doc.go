// Package release implements interactive creation of release branches: the
// operator supplies a version token, the service derives the branch name,
// verifies it is absent from the remote, creates it from the base branch, and
// pushes it with upstream tracking after confirmation.
package release
