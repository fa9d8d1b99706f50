package parser

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bifrost-tools/hueicons/errdefs"
	"github.com/bifrost-tools/hueicons/pkg/filebuffer"
	perrors "github.com/pkg/errors"
)

// Delimiter terminates the statement that assigns the object literal. Only
// its first occurrence is significant.
const Delimiter = "};\n"

// Parse reads an icon-definition source from r and parses its object
// literal. The raw input is registered in the file buffers of ctx so that
// errors can be rendered against it.
func Parse(ctx context.Context, r io.Reader) (*Object, error) {
	name := lexer.NameOfReader(r)
	if name == "" {
		name = "<stdin>"
	}

	fb := filebuffer.New(name)
	_, err := io.Copy(fb, r)
	if err != nil {
		return nil, perrors.Wrapf(err, "failed to read %s", name)
	}
	filebuffer.Buffers(ctx).Set(fb.Filename(), fb)

	lit, err := Extract(fb.Filename(), fb.String())
	if err != nil {
		return nil, err
	}
	return lit.Parse()
}

// Literal locates the object literal inside a raw source.
type Literal struct {
	Filename string
	Source   string

	// Start is the offset of the opening brace, End is the offset just after
	// the closing brace of the delimiter.
	Start, End int
}

// Extract finds the statement ending at the first Delimiter and the opening
// brace of the object literal it assigns.
func Extract(filename, src string) (*Literal, error) {
	end := strings.Index(src, Delimiter)
	if end < 0 {
		return nil, errdefs.WithMissingDelimiter(PositionAt(filename, src, len(src)))
	}

	start := strings.IndexByte(src[:end], '{')
	if start < 0 {
		return nil, errdefs.WithMissingBodyStart(PositionAt(filename, src, 0))
	}

	return &Literal{
		Filename: filename,
		Source:   src,
		Start:    start,
		End:      end + 1,
	}, nil
}

// Body returns the text between the opening brace and the delimiter.
func (l *Literal) Body() string {
	return l.Source[l.Start+1 : l.End-1]
}

// Text returns the body wrapped in a single pair of braces.
func (l *Literal) Text() string {
	return "{" + l.Body() + "}"
}

// Parse parses the wrapped body.
func (l *Literal) Parse() (*Object, error) {
	obj, err := Parser.ParseString(l.Filename, l.aligned())
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, errdefs.WithInvalidSyntax(perr)
		}
		return nil, perrors.WithStack(err)
	}
	return obj, nil
}

// aligned returns Text preceded by the declaration with every character
// except newlines blanked out, so that token positions line up with the raw
// source.
func (l *Literal) aligned() string {
	var sb strings.Builder
	for _, r := range l.Source[:l.Start] {
		if r == '\n' {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(l.Text())
	return sb.String()
}
