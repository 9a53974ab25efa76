// Package prompt implements terminal prompters for operator confirmations and
// free-form input.
package prompt
