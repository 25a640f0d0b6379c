// Package floor follows a stream of parentheses as moves between floors:
// '(' goes up one floor, ')' goes down one, any other byte stays put.
package floor

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

const (
	defaultBufferSize = 8192
	maxEmptyReads     = 100
)

// Result is the outcome of a scan.
type Result struct {
	// Floor is the floor reached after the last byte.
	Floor int64
	// Basement is the 1-based position of the byte that first brought the
	// floor to -1. Only meaningful when Reached is true.
	Basement int64
	Reached  bool
}

// BasementOrSentinel returns Basement, or -1 if the basement was never
// entered.
func (r Result) BasementOrSentinel() int64 {
	if !r.Reached {
		return -1
	}
	return r.Basement
}

type options struct {
	bufferSize int
}

// Option configures a Scanner.
type Option func(*options)

// WithBufferSize sets the size of the chunks read from the input.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Scanner holds the running state of a scan. Input may be fed in any
// number of chunks through Write.
type Scanner struct {
	floor    int64
	position int64
	basement int64
	reached  bool
	opts     options
}

// New returns a Scanner at floor 0.
func New(opts ...Option) *Scanner {
	return &Scanner{opts: newOptions(opts)}
}

// Write consumes p. It never returns an error.
func (s *Scanner) Write(p []byte) (int, error) {
	for _, b := range p {
		s.position++
		switch b {
		case '(':
			s.floor++
		case ')':
			s.floor--
		}
		if !s.reached && s.floor == -1 {
			s.basement = s.position
			s.reached = true
		}
	}
	return len(p), nil
}

func (s *Scanner) Result() Result {
	return Result{
		Floor:    s.floor,
		Basement: s.basement,
		Reached:  s.reached,
	}
}

func (s *Scanner) Reset() {
	s.floor = 0
	s.position = 0
	s.basement = 0
	s.reached = false
}

// ReadFrom consumes r until EOF. A reader that keeps returning no data
// and no error fails with io.ErrNoProgress.
func (s *Scanner) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, s.opts.bufferSize)
	var total int64
	empty := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Write(buf[:n])
			total += int64(n)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return total, io.ErrNoProgress
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Scan runs a fresh scan over r.
func Scan(r io.Reader, opts ...Option) (Result, error) {
	s := New(opts...)
	if _, err := s.ReadFrom(r); err != nil {
		return Result{}, &IOError{Op: "read", Err: err}
	}
	return s.Result(), nil
}

// ScanFile runs a fresh scan over the file at path.
func ScanFile(path string, opts ...Option) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return Result{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	s := New(opts...)
	if _, err := s.ReadFrom(f); err != nil {
		return Result{}, &IOError{Op: "read", Path: path, Err: err}
	}
	return s.Result(), nil
}

func ScanString(s string) Result {
	sc := New()
	sc.Write([]byte(s))
	return sc.Result()
}
