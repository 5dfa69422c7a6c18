package model

// PathState describes what existed at a raw destination path when it was resolved.
type PathState int

const (
	// StateMissing means nothing existed at the path.
	StateMissing PathState = iota
	// StateFile means the path was an existing regular file.
	StateFile
	// StateDirectory means the path was an existing directory.
	StateDirectory
)

// String returns the state name used in log lines.
func (s PathState) String() string {
	switch s {
	case StateFile:
		return "file"
	case StateDirectory:
		return "directory"
	default:
		return "missing"
	}
}

// Destination is the filesystem location the image of the day is written to.
//
// A Destination is built once from user input and is not modified afterwards.
type Destination struct {
	// Raw is the path exactly as supplied by the user.
	Raw string

	// Path is the concrete location the payload is written to.
	Path string

	// State is what existed at Raw when it was resolved.
	State PathState

	// Created is true when resolution had to create Raw as a directory chain.
	Created bool
}

// String returns the concrete path.
func (d *Destination) String() string {
	return d.Path
}
