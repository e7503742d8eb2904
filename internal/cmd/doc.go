// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// This package wraps [os/exec.Cmd] to capture output, making command
// failures more informative for users.
//
// # Design Notes
//
// flow shells out to the configured interpreter (bash, zsh, powershell,
// cmd) with an explicit argument vector: interpreter path and script path
// are separate argv entries, never interpolated into a shell command line.
package cmd
