package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/bifrost-tools/hueicons"
)

func (cg *CodeGen) generateRust(buf *bytes.Buffer, records []hueicons.Record) error {
	lines, err := cg.bannerLines()
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		for _, line := range lines {
			if line == "" {
				buf.WriteString("//!\n")
			} else {
				fmt.Fprintf(buf, "//! %s\n", line)
			}
		}
		buf.WriteString("\n")
	}

	for _, record := range records {
		fmt.Fprintf(buf, "pub const %s: &str = %s;\n\n", record.Name, RustString(record.Path))
	}
	return nil
}

// RustString quotes s as a Rust string literal, escaping only what the
// literal syntax requires.
func RustString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
