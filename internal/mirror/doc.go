// Package mirror drives rsync to copy and mirror directory trees between the
// working tree and the staging locations used by built-branch updates.
package mirror
