package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bifrost-tools/hueicons"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

var records = []hueicons.Record{
	{Key: "room-living", Name: "ROOM_LIVING", Path: "M1 2 L3 4"},
	{Key: "living-room-floor-lamp", Name: "LIVING_ROOM_FLOOR_LAMP", Path: `M5 "6" \ 7`},
}

func generate(t *testing.T, records []hueicons.Record, opts ...CodeGenOption) string {
	t.Helper()
	cg, err := New(opts...)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = cg.Generate(&buf, records)
	require.NoError(t, err)
	return buf.String()
}

func TestGenerate_Rust(t *testing.T) {
	t.Parallel()

	expected := strings.TrimPrefix(dedent.Dedent(`
		pub const ROOM_LIVING: &str = "M1 2 L3 4";

		pub const LIVING_ROOM_FLOOR_LAMP: &str = "M5 \"6\" \\ 7";

	`), "\n")
	require.Equal(t, expected, generate(t, records))
}

func TestGenerate_RustHeader(t *testing.T) {
	t.Parallel()

	banner := strings.TrimPrefix(dedent.Dedent(`
		//! GENERATED FILE - DO NOT EDIT
		//!
		//! This file is derived from hass-hue-icons
		//!
		//!   <https://github.com/arallsopp/hass-hue-icons>
		//!
		//! These icons are licensed under Creative Commons:
		//!
		//!   [CC BY-NC-SA 4.0](http://creativecommons.org/licenses/by-nc-sa/4.0/)

	`), "\n")

	plain := generate(t, records)
	withHeader := generate(t, records, WithHeader(DefaultBanner))
	require.Equal(t, banner+plain, withHeader)
}

func TestGenerate_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", generate(t, nil))
}

func TestGenerate_Go(t *testing.T) {
	t.Parallel()

	out := generate(t, records, WithTarget(Go), WithPackage("icons"), WithHeader(DefaultBanner))

	require.True(t, strings.HasPrefix(out, "// Code generated by hueicons. DO NOT EDIT.\n"), out)
	require.Contains(t, out, "// GENERATED FILE - DO NOT EDIT\n")
	require.Contains(t, out, "// This file is derived from hass-hue-icons\n")
	require.Contains(t, out, "\npackage icons\n")
	require.Contains(t, out, `// ROOM_LIVING is the path of the "room-living" icon.`)
	require.Regexp(t, `ROOM_LIVING\s+=\s+"M1 2 L3 4"`, out)
	require.Regexp(t, `LIVING_ROOM_FLOOR_LAMP\s+=\s+"M5 \\"6\\" \\\\ 7"`, out)
	require.Less(t, strings.Index(out, "ROOM_LIVING"), strings.Index(out, "LIVING_ROOM_FLOOR_LAMP"))
}

func TestGenerate_GoDefaultPackage(t *testing.T) {
	t.Parallel()

	out := generate(t, records, WithTarget(Go))
	require.Contains(t, out, "package hueicons\n")
	require.NotContains(t, out, "GENERATED FILE")
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()

	for _, target := range Targets {
		first := generate(t, records, WithTarget(target), WithHeader(DefaultBanner))
		second := generate(t, records, WithTarget(target), WithHeader(DefaultBanner))
		require.Equal(t, first, second, string(target))
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := New(WithTarget("python"))
	require.Error(t, err)

	_, err = New(WithPackage("not-a-package"))
	require.Error(t, err)

	_, err = New(WithPackage("_"))
	require.Error(t, err)
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	target, err := ParseTarget("rust")
	require.NoError(t, err)
	require.Equal(t, Rust, target)

	target, err = ParseTarget("go")
	require.NoError(t, err)
	require.Equal(t, Go, target)

	_, err = ParseTarget("rsut")
	require.EqualError(t, err, `unknown target "rsut", did you mean rust?`)

	_, err = ParseTarget("javascript")
	require.EqualError(t, err, `unknown target "javascript", must be one of ["rust" "go"]`)
}

func TestRustString(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]string{
		`M1 2`:   `"M1 2"`,
		`a"b`:    `"a\"b"`,
		`a\b`:    `"a\\b"`,
		"a\nb\t": `"a\nb\t"`,
		"\x00":   `"\0"`,
		"\x1b":   `"\u{1b}"`,
		"é":      `"é"`,
	} {
		require.Equal(t, expected, RustString(input))
	}
}

func TestBanner_Lines(t *testing.T) {
	t.Parallel()

	lines, err := DefaultBanner.Lines()
	require.NoError(t, err)
	require.Equal(t, "GENERATED FILE - DO NOT EDIT", lines[0])
	require.Equal(t, "  [CC BY-NC-SA 4.0](http://creativecommons.org/licenses/by-nc-sa/4.0/)", lines[len(lines)-1])

	custom := Banner{
		Upstream: "my-icons",
		Template: `Icons from {{ .Upstream | upper }}`,
	}
	lines, err = custom.Lines()
	require.NoError(t, err)
	require.Equal(t, []string{"Icons from MY-ICONS"}, lines)

	_, err = Banner{Template: `{{ .Missing `}.Lines()
	require.Error(t, err)

	lines, err = Banner{Template: `{{/* nothing */}}`}.Lines()
	require.NoError(t, err)
	require.Empty(t, lines)
}
