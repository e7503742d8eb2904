// Package script generates shell scripts from comma-separated command
// lists.
//
// Each flow stores its commands as one generated script file whose header,
// extension and statement separator depend on the configured dialect. The
// generator is a pure function; writing the file is the caller's job.
package script
