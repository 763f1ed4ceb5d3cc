package domain

import "time"

// ChangeOp describes what happened to a path.
type ChangeOp string

// Operations reported by the watch backend.
const (
	ChangeOpCreate ChangeOp = "create"
	ChangeOpWrite  ChangeOp = "write"
	ChangeOpRemove ChangeOp = "remove"
	ChangeOpRename ChangeOp = "rename"
	ChangeOpChmod  ChangeOp = "chmod"
)

// ChangeEvent is a single file-system notification under the watched root.
// It is consumed immediately and never stored.
type ChangeEvent struct {
	// Path is the absolute path reported by the watch backend.
	Path string

	// IsDirectory is true when the event refers to a directory.
	IsDirectory bool

	// ObservedAt is when the backend delivered the event.
	ObservedAt time.Time

	// Op is the kind of change, for diagnostics only.
	Op ChangeOp
}
