package cmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a command and returns trimmed stderr as the error message
// if it fails. Use for commands whose output nobody reads on success.
func Run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// Capture executes a command and returns stdout and stderr separately.
// Stderr is captured but not folded into the error: plenty of well-behaved
// tools write diagnostics there, so the caller decides how to report it.
// The error is non-nil for spawn failures and non-zero exits alike.
func Capture(cmd *exec.Cmd) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
