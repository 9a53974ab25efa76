// Package shared declares the interfaces and policies consumed by the
// release-branch and built-branch services, along with default dependency
// resolution helpers.
package shared
