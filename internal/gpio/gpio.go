// Package gpio abstracts the two physical pins the node owns: the pull-up
// button input and the status LED output. The real implementation uses the
// Linux GPIO character device; fakes allow deterministic tests without
// hardware. Each pin has exactly one owner, so no implementation needs to
// be safe for concurrent use.
package gpio

// InputPin reads a single boolean signal.
type InputPin interface {
	// Read returns the logical signal: true while the button is held.
	// The raw line is pull-up and active-low; implementations invert it.
	Read() (bool, error)

	// Close releases the pin.
	Close() error
}

// OutputPin drives a single boolean signal.
type OutputPin interface {
	// Write sets the logical level: true drives the LED on.
	Write(on bool) error

	// Close releases the pin.
	Close() error
}
