// Package errdefs defines the errors reported for malformed icon-definition
// sources. Every constructor attaches the source span of the problem so it
// can be rendered by the diagnostic package.
package errdefs

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bifrost-tools/hueicons/diagnostic"
	perrors "github.com/pkg/errors"
)

// Kind classifies a MalformedInputError.
type Kind int

const (
	// MissingDelimiter means the input has no "};\n" terminator.
	MissingDelimiter Kind = iota + 1
	// MissingBodyStart means no "{" precedes the terminator.
	MissingBodyStart
	// InvalidSyntax means the object literal does not parse.
	InvalidSyntax
	// MissingField means an entry has no path.
	MissingField
	// InvalidEntry means an entry or one of its fields has the wrong shape.
	InvalidEntry
	// DuplicateName means two keys normalize to the same identifier.
	DuplicateName
)

func (k Kind) String() string {
	switch k {
	case MissingDelimiter:
		return "missing delimiter"
	case MissingBodyStart:
		return "missing body start"
	case InvalidSyntax:
		return "invalid syntax"
	case MissingField:
		return "missing field"
	case InvalidEntry:
		return "invalid entry"
	case DuplicateName:
		return "duplicate name"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MalformedInputError is returned for every input that cannot be converted.
type MalformedInputError struct {
	Kind Kind
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed input: %s", e.Kind)
	}
	return fmt.Sprintf("malformed input: %s: %s", e.Kind, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any diagnostic grouped with it, is a
// MalformedInputError of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *diagnostic.Error
	if errors.As(err, &de) {
		for _, d := range de.Diagnostics {
			if isKind(d, kind) {
				return true
			}
		}
	}
	return isKind(err, kind)
}

func isKind(err error, kind Kind) bool {
	var mie *MalformedInputError
	return errors.As(err, &mie) && mie.Kind == kind
}

func WithMissingDelimiter(pos lexer.Position) error {
	return diagnostic.WithError(&MalformedInputError{
		Kind: MissingDelimiter,
		Err:  perrors.Errorf("expected %q terminating the object literal", "};"),
	}, pos, pos)
}

func WithMissingBodyStart(pos lexer.Position) error {
	return diagnostic.WithError(&MalformedInputError{
		Kind: MissingBodyStart,
		Err:  perrors.Errorf("expected %q before the terminator", "{"),
	}, pos, pos)
}

// parseError reports a participle error without its position prefix, which
// the enclosing span already carries.
type parseError struct {
	perr participle.Error
}

func (e *parseError) Error() string {
	return e.perr.Message()
}

func (e *parseError) Unwrap() error {
	return e.perr
}

func WithInvalidSyntax(perr participle.Error) error {
	pos := perr.Position()
	end := diagnostic.Offset(pos, 1, 0)
	return diagnostic.WithError(
		&MalformedInputError{Kind: InvalidSyntax, Err: &parseError{perr}},
		pos, end,
		diagnostic.Spanf(diagnostic.Primary, pos, end, "%s", perr.Message()),
	)
}

// WithMissingField reports an entry without a path. fields are the names the
// entry does have, used to suggest a misspelling.
func WithMissingField(key, field string, pos, end lexer.Position, fields []string) error {
	msg := fmt.Sprintf("entry has no %q field", field)
	if suggestion := diagnostic.Suggestion(field, fields); suggestion != "" {
		msg = fmt.Sprintf("%s, found %q", msg, suggestion)
	}
	return diagnostic.WithError(
		&MalformedInputError{Kind: MissingField, Err: perrors.Errorf("icon %q has no %q field", key, field)},
		pos, end,
		diagnostic.Spanf(diagnostic.Primary, pos, end, "%s", msg),
	)
}

func WithInvalidEntry(pos, end lexer.Position, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return diagnostic.WithError(
		&MalformedInputError{Kind: InvalidEntry, Err: perrors.New(msg)},
		pos, end,
		diagnostic.Spanf(diagnostic.Primary, pos, end, "%s", msg),
	)
}

func WithDuplicateName(name string, pos, end, prevPos, prevEnd lexer.Position) error {
	return diagnostic.WithError(
		&MalformedInputError{Kind: DuplicateName, Err: perrors.Errorf("identifier %s defined more than once", name)},
		pos, end,
		diagnostic.Spanf(diagnostic.Primary, pos, end, "normalizes to %s", name),
		diagnostic.Spanf(diagnostic.Secondary, prevPos, prevEnd, "%s first defined here", name),
	)
}
