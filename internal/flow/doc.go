// Package flow implements the flow lifecycle: create, list, run, edit,
// delete and the reinit state machine.
//
// A flow is a named, directory-scoped script generated from a
// comma-separated command list. The service composes the settings
// snapshot, the registry and the script generator; it is the only place
// with side effects beyond a single file.
//
// # Consistency
//
// Operations are ordered so a failure leaves the registry consistent:
// create writes files before the record, delete removes files before the
// record. The known gaps (orphaned script when a registry write fails
// after a successful file write, dangling record when the reverse delete
// ordering fails) are accepted for a single-user tool and are not
// papered over with transactions or locking.
package flow
