// Package ui renders command lifecycle events for operators following
// console output, translating execshell notifications into readable logs.
package ui
