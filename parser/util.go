package parser

import (
	"encoding/json"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var errNotString = errors.New("value is not a string")

// Unquote decodes a double-quoted string token with JSON escape semantics.
func Unquote(quoted string) (string, error) {
	var s string
	err := json.Unmarshal([]byte(quoted), &s)
	if err != nil {
		return "", errors.Wrap(err, "invalid string literal")
	}
	return s, nil
}

// PositionAt returns the position of a byte offset in src. Columns count
// runes like the lexer does.
func PositionAt(filename, src string, offset int) lexer.Position {
	pos := lexer.Position{
		Filename: filename,
		Offset:   offset,
		Line:     1,
		Column:   1,
	}
	for _, r := range src[:offset] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

type NamedReader struct {
	io.Reader
	Value string
}

func (nr *NamedReader) Name() string {
	return nr.Value
}
