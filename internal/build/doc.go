// Package build refreshes built release branches by mirroring the current
// working tree into a shallow clone of the target branch and publishing the
// resulting commit.
package build
