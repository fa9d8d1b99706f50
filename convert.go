// Package hueicons converts the hass-hue-icons object literal into named
// icon records.
package hueicons

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bifrost-tools/hueicons/diagnostic"
	"github.com/bifrost-tools/hueicons/errdefs"
	"github.com/bifrost-tools/hueicons/parser"
)

// PathField is the entry field holding the icon's SVG path.
const PathField = "path"

// Record is one generated constant.
type Record struct {
	// Key is the icon identifier in the source, e.g. "room-living".
	Key string
	// Name is the constant identifier, e.g. "ROOM_LIVING".
	Name string
	// Path is the decoded value of the entry's path field.
	Path string
	// Pos is the position of the key in the source.
	Pos lexer.Position
}

// Convert reads an icon-definition source from r and returns one record per
// icon, in source order. On any error no records are returned.
func Convert(ctx context.Context, r io.Reader) ([]Record, error) {
	obj, err := parser.Parse(ctx, r)
	if err != nil {
		return nil, err
	}
	return Project(obj)
}

// ConvertString is Convert for an in-memory source.
func ConvertString(ctx context.Context, filename, src string) ([]Record, error) {
	return Convert(ctx, &parser.NamedReader{
		Reader: strings.NewReader(src),
		Value:  filename,
	})
}

// Project derives a record for every member of obj. Every problem found is
// reported, grouped into a single error.
func Project(obj *parser.Object) ([]Record, error) {
	var (
		records []Record
		errs    []error
		seen    = make(map[string]*parser.Key)
	)
	for _, m := range obj.Members {
		record, err := project(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if prev, ok := seen[record.Name]; ok {
			errs = append(errs, errdefs.WithDuplicateName(record.Name, m.Key.Pos, m.Key.EndPos, prev.Pos, prev.EndPos))
			continue
		}
		seen[record.Name] = m.Key

		records = append(records, record)
	}

	if err := diagnostic.Join(errs); err != nil {
		return nil, err
	}
	return records, nil
}

func project(m *parser.Member) (Record, error) {
	key, err := m.Key.Text()
	if err != nil {
		return Record{}, errdefs.WithInvalidEntry(m.Key.Pos, m.Key.EndPos, "%s", err)
	}

	name := Normalize(key)
	if !IsIdentifier(name) {
		return Record{}, errdefs.WithInvalidEntry(m.Key.Pos, m.Key.EndPos, "key %q does not normalize to an identifier", key)
	}

	entry := m.Value.Object
	if entry == nil {
		return Record{}, errdefs.WithInvalidEntry(m.Value.Pos, m.Value.EndPos, "icon %q must be an object, found %s", key, m.Value.Kind())
	}

	field := entry.Field(PathField)
	if field == nil {
		return Record{}, errdefs.WithMissingField(key, PathField, m.Key.Pos, m.Key.EndPos, entry.Keys())
	}

	if field.Value.String == nil {
		return Record{}, errdefs.WithInvalidEntry(field.Value.Pos, field.Value.EndPos, "%s of icon %q must be a string, found %s", PathField, key, field.Value.Kind())
	}
	path, err := field.Value.Text()
	if err != nil {
		return Record{}, errdefs.WithInvalidEntry(field.Value.Pos, field.Value.EndPos, "%s", err)
	}

	return Record{
		Key:  key,
		Name: name,
		Path: path,
		Pos:  m.Key.Pos,
	}, nil
}

// Normalize upper-cases key and replaces hyphens with underscores, e.g.
// "living-room-floor-lamp" becomes "LIVING_ROOM_FLOOR_LAMP".
func Normalize(key string) string {
	return strings.ReplaceAll(strings.ToUpper(key), "-", "_")
}

// IsIdentifier reports whether name is usable as a constant name in every
// target: ASCII letters, digits and underscores, not starting with a digit.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
