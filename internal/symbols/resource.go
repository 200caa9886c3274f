package symbols

import "io"

// ResourceDescriptor describes one embedded resource scheduled for emission.
// It is independent of the symbol tree. Provider is opaque: validation reads
// only Name and Path and never opens the data.
type ResourceDescriptor struct {
	Name     string
	Path     string
	Public   bool
	Provider func() (io.ReadCloser, error)
}
