package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrSourceUnavailable means the operating system CSPRNG could not be
	// read. This is fatal for the process: there is no fallback generator.
	ErrSourceUnavailable = errors.New("secure random source unavailable")
)

// Source supplies cryptographically secure random bytes. It is passed
// explicitly rather than read from a package global so tests can substitute
// a deterministic implementation.
type Source interface {
	// Fill returns n random bytes. Fill(0) returns an empty slice.
	Fill(n int) ([]byte, error)
}

type osSource struct{}

// OSSource returns a Source backed by the operating system CSPRNG.
// Every call draws fresh entropy; nothing is cached.
func OSSource() Source {
	return osSource{}
}

func (osSource) Fill(n int) ([]byte, error) {
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return b, nil
}
