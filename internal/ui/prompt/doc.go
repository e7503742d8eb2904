// Package prompt provides simple interactive prompts.
//
// The prompts collect the values flow's verbs need when they aren't given
// as arguments: a flow name, a working directory, a command list, the
// reinit Move/Delete/Cancel choice. Each prompt is a standalone bubbletea
// program rendering to stderr so stdout stays available for piping.
//
// All prompts report cancellation (ctrl+c / esc) through their result
// value rather than an error, and refuse to run when stdin is not a
// terminal.
package prompt
