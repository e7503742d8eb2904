// Package workdir scopes a working-directory change around a function
// call.
//
// Running or editing a flow happens inside the flow's working directory,
// and the caller's directory must be restored no matter how the guarded
// call exits. Treat the change like a held resource: Chdir is the acquire,
// the deferred Chdir back is the release.
package workdir

import (
	"fmt"
	"os"
)

// In runs fn with the process working directory set to dir, restoring the
// previous directory on every exit path. A restore failure is surfaced
// even when fn succeeded; fn's error wins when both fail.
func In(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter %s: %w", dir, err)
	}

	defer func() {
		if rerr := os.Chdir(prev); rerr != nil && err == nil {
			err = fmt.Errorf("restore working directory: %w", rerr)
		}
	}()

	return fn()
}
