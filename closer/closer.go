// Package closer collects io.Closer resources and releases them together.
//
// It exists for layered readers, where a decompressor wraps a file and must
// be closed before it. Closers run in the order they were added, so callers
// register the outermost layer first.
package closer

import (
	"errors"
	"io"
)

// Closer accumulates io.Closer instances and closes them all at once.
//
// Example:
//
//	resources := closer.NewCloser()
//	file, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	reader, err := wrapDecompressor(file, resources)
//	if err != nil {
//	    _ = file.Close()
//	    return err
//	}
//	resources.Add(file)
//
//	// reader's decompressor closes first, then file
//	defer resources.Close()
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a Closer holding zero or more initial io.Closer instances.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add registers an io.Closer to be closed by Close. Nil closers are allowed
// and skipped during Close.
//
// Add is not safe for concurrent use.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes every registered io.Closer in the order it was added. All
// closers are attempted even when earlier ones fail; failures come back as a
// single joined error.
func (c *Closer) Close() error {
	var errs []error

	for _, closer := range c.closers {
		if closer != nil {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// customCloser adapts a cleanup function to io.Closer.
type customCloser struct {
	closeFn func() error
}

// CustomCloser creates an io.Closer from a cleanup function, so cleanup
// steps without a Close method can join a Closer. Returns nil if closeFn is
// nil.
//
// Example:
//
//	decoder, err := zstd.NewReader(file)
//	if err != nil {
//	    return err
//	}
//	resources.Add(closer.CustomCloser(func() error {
//	    decoder.Close()
//	    return nil
//	}))
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return &customCloser{closeFn: closeFn}
}

// Close executes the wrapped cleanup function and returns its result.
func (c *customCloser) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}

	return nil
}
