package charconv

import (
	"fmt"

	"github.com/bearlytools/charconv/internal/assert"
	"github.com/pkg/errors"
)

// ErrSyntax indicates that a token is not valid text for the requested kind. Values that do
// not fit the kind are syntax errors too.
var ErrSyntax = errors.New("invalid syntax")

// NumError records a failed Parse.
type NumError struct {
	// Kind is the kind that was requested.
	Kind Kind
	// Text is the token that was rejected.
	Text string
	// Err is the reason, currently always ErrSyntax.
	Err error
}

func (e *NumError) Error() string {
	return fmt.Sprintf("charconv: parsing %q as %s: %s", e.Text, e.Kind, e.Err)
}

func (e *NumError) Unwrap() error {
	return e.Err
}

// Parse is FromText for callers that want an error. On failure the error wraps a *NumError
// and carries a stack trace; errors.Is(err, ErrSyntax) holds. Span kinds alias tok as they do
// with FromText. Fixed is not accepted because a zero Fixed has no storage to decode into;
// use FromText with a Fixed from NewFixed.
func Parse[T Value](tok []byte) (T, error) {
	assert.That(KindOf[T]() != KFixed, "Parse cannot decode into a Fixed without storage")
	var v T
	if !FromText(tok, &v) {
		var zero T
		return zero, errors.WithStack(&NumError{Kind: KindOf[T](), Text: string(tok), Err: ErrSyntax})
	}
	return v, nil
}
