package font

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Font is a reference-counted handle to a parsed font source.
//
// A Font returned by New or one of the Open functions holds one reference,
// owned by the caller. Every rendering context that lists the font takes
// its own reference with Retain and drops it with Close, so a font stays
// usable until the last holder has released it.
//
// Font is safe for concurrent use.
type Font struct {
	provider Provider
	name     string
	refs     atomic.Int32
}

// New wraps a provider in a Font holding one reference.
// Returns nil if p is nil.
func New(p Provider) *Font {
	if p == nil {
		return nil
	}
	f := &Font{provider: p, name: p.Name()}
	f.refs.Store(1)
	return f
}

// Option configures how font data is parsed.
type Option func(*options)

type options struct {
	parserName string
}

func defaultOptions() options {
	return options{parserName: defaultParserName}
}

// WithParser selects a registered parser by name. See RegisterParser.
func WithParser(name string) Option {
	return func(o *options) {
		o.parserName = name
	}
}

// OpenMem parses a font from memory. The data slice is copied internally
// and can be reused after this call.
func OpenMem(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrFormat)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	parser, err := getParser(o.parserName)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	p, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}
	f := New(p)
	Logger().Debug("font: opened", "name", f.name, "parser", o.parserName, "bytes", len(data))
	return f, nil
}

// OpenFile loads a font from a file path.
func OpenFile(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return OpenMem(data, opts...)
}

// OpenReader loads a font by reading r to EOF.
func OpenReader(r io.Reader, opts ...Option) (*Font, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrIO)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return OpenMem(data, opts...)
}

// OpenFD loads a font from an open file descriptor, reading from its
// current offset to EOF. OpenFD takes ownership of fd and closes it once
// the data has been read, whether or not parsing succeeds.
func OpenFD(fd uintptr, opts ...Option) (*Font, error) {
	file := os.NewFile(fd, "font")
	if file == nil {
		return nil, fmt.Errorf("%w: invalid file descriptor", ErrIO)
	}
	data, err := io.ReadAll(file)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return OpenMem(data, opts...)
}

// Retain takes an additional reference. It returns false if the font has
// already been closed, in which case no reference was taken.
func (f *Font) Retain() bool {
	if f == nil {
		return false
	}
	for {
		n := f.refs.Load()
		if n <= 0 {
			return false
		}
		if f.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Close drops one reference. When the last reference is dropped the
// provider is released, closing it if it implements io.Closer.
// Closing a font with no references left returns ErrClosed.
func (f *Font) Close() error {
	if f == nil {
		return nil
	}
	for {
		n := f.refs.Load()
		if n <= 0 {
			return ErrClosed
		}
		if !f.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n > 1 {
			return nil
		}
		Logger().Debug("font: released", "name", f.name)
		if c, ok := f.provider.(io.Closer); ok {
			return c.Close()
		}
		return nil
	}
}

// RefCount returns the number of live references.
func (f *Font) RefCount() int {
	if f == nil {
		return 0
	}
	return int(f.refs.Load())
}

// Closed reports whether every reference has been released.
func (f *Font) Closed() bool {
	return f.RefCount() <= 0
}

// Name returns the font family name.
func (f *Font) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Provider returns the parsed font source behind the handle.
func (f *Font) Provider() Provider {
	if f == nil {
		return nil
	}
	return f.provider
}
