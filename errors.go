package csrdump

import "errors"

// Sentinel errors returned by the reporter and driver.
var (
	// ErrWrite is returned when a report line could not be written to the
	// output stream.
	ErrWrite = errors.New("write failed")
)
