package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// Lexer lexes a JavaScript object literal into tokens. Keys may be bare
	// identifiers; strings must use double quotes.
	Lexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*|/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"`},
		{Name: "Number", Pattern: `-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Punct", Pattern: `[{}\[\]:,]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	})

	// Parser parses an object literal into a concrete syntax tree rooted from
	// an Object. Elements are separated by commas and a trailing comma is
	// allowed before the closing bracket.
	Parser = participle.MustBuild[Object](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)

// Node is implemented by all nodes in the CST.
type Node interface {
	// Position returns position of the first character belonging to the node.
	Position() lexer.Position

	// End returns position of the first character immediately after the node.
	End() lexer.Position
}

type Mixin struct {
	Pos    lexer.Position
	EndPos lexer.Position
}

func (m Mixin) Position() lexer.Position { return m.Pos }
func (m Mixin) End() lexer.Position      { return m.EndPos }

// Object is a brace-delimited list of members. Member order is the source
// order and duplicate keys are kept.
type Object struct {
	Mixin
	Members []*Member `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

// Field returns the last member named name, matching how JSON decoders
// resolve duplicate keys.
func (o *Object) Field(name string) *Member {
	var found *Member
	for _, m := range o.Members {
		if key, err := m.Key.Text(); err == nil && key == name {
			found = m
		}
	}
	return found
}

// Keys returns the decodable keys of the object in source order.
func (o *Object) Keys() []string {
	var keys []string
	for _, m := range o.Members {
		if key, err := m.Key.Text(); err == nil {
			keys = append(keys, key)
		}
	}
	return keys
}

type Member struct {
	Mixin
	Key   *Key   `parser:"@@ ':'"`
	Value *Value `parser:"@@"`
}

// Key is either a double-quoted string or a bare identifier, such as the
// path and keywords fields of an icon entry.
type Key struct {
	Mixin
	Quoted *string `parser:"( @String"`
	Bare   *string `parser:"| @Ident )"`
}

// Text returns the decoded key.
func (k *Key) Text() (string, error) {
	if k.Bare != nil {
		return *k.Bare, nil
	}
	return Unquote(*k.Quoted)
}

type Value struct {
	Mixin
	String *string `parser:"( @String"`
	Number *string `parser:"| @Number"`
	Bool   *string `parser:"| @( 'true' | 'false' )"`
	Null   bool    `parser:"| @'null'"`
	Array  *Array  `parser:"| @@"`
	Object *Object `parser:"| @@ )"`
}

// Kind names the type of the value for diagnostics.
func (v *Value) Kind() string {
	switch {
	case v.String != nil:
		return "string"
	case v.Number != nil:
		return "number"
	case v.Bool != nil:
		return "boolean"
	case v.Null:
		return "null"
	case v.Array != nil:
		return "array"
	case v.Object != nil:
		return "object"
	default:
		return "unknown"
	}
}

// Text returns the decoded string value. It fails for non-string values.
func (v *Value) Text() (string, error) {
	if v.String == nil {
		return "", errNotString
	}
	return Unquote(*v.String)
}

type Array struct {
	Mixin
	Elems []*Value `parser:"'[' ( @@ ( ',' @@ )* ','? )? ']'"`
}
