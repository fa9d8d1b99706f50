package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	perrors "github.com/pkg/errors"
)

// Error groups multiple diagnostics found in a single pass. Err is the
// diagnostic reported first.
type Error struct {
	Err         error
	Diagnostics []error
}

func (e *Error) Error() string {
	var errs []string
	for _, err := range e.Diagnostics {
		errs = append(errs, err.Error())
	}
	return strings.Join(errs, "\n")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Join returns nil for no errors, the error itself for one error and an
// *Error for more.
func Join(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &Error{Err: errs[0], Diagnostics: errs}
	}
}

func Spans(err error) (spans []*SpanError) {
	var e *Error
	if errors.As(err, &e) {
		for _, err := range e.Diagnostics {
			var span *SpanError
			if errors.As(err, &span) {
				spans = append(spans, span)
			}
		}
		return spans
	}
	var span *SpanError
	if errors.As(err, &span) {
		spans = append(spans, span)
	}
	return spans
}

// DisplayError writes err to stderr, rendering every span it carries with
// its source context. opts are applied to every span.
func DisplayError(ctx context.Context, stderr io.Writer, err error, opts ...PrettyOption) {
	spans := Spans(err)
	if len(spans) == 0 {
		color := Color(ctx)
		fmt.Fprintln(stderr, color.Sprintf(
			"%s: %s",
			color.Bold(color.Red("error")),
			color.Bold(Cause(err)),
		))
		return
	}

	for _, span := range spans {
		fmt.Fprintln(stderr, strings.TrimSuffix(span.Pretty(ctx, opts...), "\n"))
	}
}

func Cause(err error) string {
	return perrors.Cause(err).Error()
}
