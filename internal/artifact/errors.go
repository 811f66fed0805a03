package artifact

import "errors"

// Sentinel errors shared by the store, the engines, and the CLI. Callers
// classify failures with errors.Is and wrap them with fmt.Errorf("...: %w").
var (
	// ErrNotFound marks a missing artifact, target, or path.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate name within a (scope, project, type) key.
	ErrConflict = errors.New("name already exists")

	// ErrPermissionDenied marks an unreadable or unwritable path.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAdapterFailure marks a target-specific read/write error.
	ErrAdapterFailure = errors.New("target adapter failure")

	// ErrValidation marks a malformed artifact payload.
	ErrValidation = errors.New("invalid artifact")
)
