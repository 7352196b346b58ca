package logging

import (
	"io"
	"log"
	"os"
)

// New returns a stdout logger tagged with the component name.
func New(component string) *log.Logger {
	return NewWithWriter(component, os.Stdout)
}

// NewWithWriter is New with an explicit destination, used by tests and by
// callers that need the access log somewhere other than stdout.
func NewWithWriter(component string, w io.Writer) *log.Logger {
	prefix := component
	if prefix != "" {
		prefix = "[" + component + "] "
	}

	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}
