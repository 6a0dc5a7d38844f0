package netstats

import "errors"

// Sentinel errors wrapped by Monitor operations. Match with errors.Is.
var (
	// ErrInterfaceNotFound is returned at construction when the interface
	// directory is missing or is not a directory.
	ErrInterfaceNotFound = errors.New("network interface not found")

	// ErrStatIO is returned when opening, repositioning or reading a
	// statistics file fails at the OS level, including short reads of
	// zero bytes. The wrapped chain carries the OS error description.
	ErrStatIO = errors.New("stats file I/O failure")

	// ErrBadStatValue is returned when a statistics file's content does
	// not look like a counter: no leading decimal digits, an unparsable
	// number, or a read that fills the whole read buffer. This signals a
	// defect rather than an OS failure, so no OS error is attached.
	ErrBadStatValue = errors.New("malformed stats value")

	// ErrMonitorClosed is returned by subscribe and update operations
	// after Close has released the monitor's handles.
	ErrMonitorClosed = errors.New("monitor is closed")
)
