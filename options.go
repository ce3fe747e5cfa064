package charconv

import "github.com/bearlytools/charconv/internal/span"

// FirstOption configures a FromTextFirst call.
type FirstOption func(*firstOptions)

// firstOptions holds per-call configuration for FromTextFirst.
type firstOptions struct {
	seps span.Set
}

// WithSeparators replaces the bytes skipped before a value and, for span kinds, the bytes
// that end it. The default is space, tab, newline and carriage return.
func WithSeparators(seps string) FirstOption {
	return func(o *firstOptions) {
		o.seps = span.NewSet(seps)
	}
}
