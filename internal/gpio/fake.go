package gpio

import "errors"

// FakeInput is a test double that returns scripted button samples.
type FakeInput struct {
	// Samples contains scripted logical values (true = pressed).
	// Each call to Read consumes the next sample; when exhausted, the
	// last sample repeats.
	Samples []bool

	// ReadError, if set, is returned by Read.
	ReadError error

	// Closed tracks whether Close was called.
	Closed bool

	index int
}

// NewFakeInput creates a FakeInput with the given samples.
func NewFakeInput(samples ...bool) *FakeInput {
	return &FakeInput{Samples: samples}
}

// Read returns the next scripted sample.
func (f *FakeInput) Read() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}
	if len(f.Samples) == 0 {
		return false, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return sample, nil
}

// Close marks the input as closed.
func (f *FakeInput) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds to the beginning of the samples.
func (f *FakeInput) Reset() {
	f.index = 0
	f.Closed = false
}

// FakeOutput is a test double that records every LED write.
type FakeOutput struct {
	// Writes contains each level written, in order.
	Writes []bool

	// WriteError, if set, is returned by Write.
	WriteError error

	// Closed tracks whether Close was called.
	Closed bool
}

// NewFakeOutput creates an empty FakeOutput.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// Write records the level.
func (f *FakeOutput) Write(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Writes = append(f.Writes, on)
	return nil
}

// Close marks the output as closed.
func (f *FakeOutput) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent write, or false if nothing was written.
func (f *FakeOutput) Last() (bool, bool) {
	if len(f.Writes) == 0 {
		return false, false
	}
	return f.Writes[len(f.Writes)-1], true
}
