package hueicons

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bifrost-tools/hueicons/diagnostic"
	"github.com/bifrost-tools/hueicons/errdefs"
	"github.com/bifrost-tools/hueicons/pkg/filebuffer"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, input string) ([]Record, error) {
	t.Helper()
	ctx := filebuffer.WithBuffers(context.Background(), filebuffer.NewBuffers())
	return ConvertString(ctx, "hass-hue-icons.js", dedent.Dedent(input))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	records, err := convert(t, `
		var icons = {
		  "room-living": {path: "M1 2 L3 4", keywords: ["a", "b"]},
		  "living-room-floor-lamp": {path: "M5 6", keywords: []},
		  "bulb-classic": {keywords: ["c"], path: "M7 8"},
		  "zz-last": {path: "M9"}
		};
		trailing garbage that is never parsed {{{
	`)
	require.NoError(t, err)

	var names, paths []string
	for _, record := range records {
		names = append(names, record.Name)
		paths = append(paths, record.Path)
	}
	require.Equal(t, []string{"ROOM_LIVING", "LIVING_ROOM_FLOOR_LAMP", "BULB_CLASSIC", "ZZ_LAST"}, names)
	require.Equal(t, []string{"M1 2 L3 4", "M5 6", "M7 8", "M9"}, paths)

	require.Equal(t, "room-living", records[0].Key)
	require.Equal(t, "hass-hue-icons.js", records[0].Pos.Filename)
	require.Equal(t, 3, records[0].Pos.Line)
}

func TestConvert_Idempotent(t *testing.T) {
	t.Parallel()

	input := `
		const icons = {
		  "a-b": {path: "M1"},
		  "c": {path: "M2"},
		};
	`
	first, err := convert(t, input)
	require.NoError(t, err)
	second, err := convert(t, input)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestConvert_Empty(t *testing.T) {
	t.Parallel()

	records, err := convert(t, "var icons = {\n};\n")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	for key, expected := range map[string]string{
		"living-room-floor-lamp": "LIVING_ROOM_FLOOR_LAMP",
		"room-living":            "ROOM_LIVING",
		"bulb":                   "BULB",
		"bulb-e27-classic":       "BULB_E27_CLASSIC",
		"already_snake":          "ALREADY_SNAKE",
	} {
		require.Equal(t, expected, Normalize(key))
	}
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"A", "ROOM_LIVING", "_X", "E27"} {
		require.True(t, IsIdentifier(name), name)
	}
	for _, name := range []string{"", "3D_BULB", "HUE:BULB", "BULB.CLASSIC", "ÉCLAIRAGE"} {
		require.False(t, IsIdentifier(name), name)
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		input   string
		kind    errdefs.Kind
		line    int
		message string
	}{{
		"missing delimiter",
		`
		var icons = {"a": {path: "M1"}}
		`,
		errdefs.MissingDelimiter,
		3,
		"",
	}, {
		"missing path",
		`
		var icons = {
		  "first": {path: "M1"},
		  "second": {keywords: ["x"]}
		};
		`,
		errdefs.MissingField,
		4,
		`entry has no "path" field`,
	}, {
		"misspelled path",
		`
		var icons = {
		  "first": {pth: "M1"}
		};
		`,
		errdefs.MissingField,
		3,
		`found "pth"`,
	}, {
		"entry is not an object",
		`
		var icons = {
		  "first": "M1"
		};
		`,
		errdefs.InvalidEntry,
		3,
		`must be an object, found string`,
	}, {
		"path is not a string",
		`
		var icons = {
		  "first": {path: ["M1"]}
		};
		`,
		errdefs.InvalidEntry,
		3,
		`must be a string, found array`,
	}, {
		"invalid escape",
		`
		var icons = {
		  "first": {path: "M\x31"}
		};
		`,
		errdefs.InvalidEntry,
		3,
		`invalid string literal`,
	}, {
		"not an identifier",
		`
		var icons = {
		  "3d-bulb": {path: "M1"}
		};
		`,
		errdefs.InvalidEntry,
		3,
		`does not normalize to an identifier`,
	}, {
		"duplicate key",
		`
		var icons = {
		  "room": {path: "M1"},
		  "room": {path: "M2"}
		};
		`,
		errdefs.DuplicateName,
		4,
		`normalizes to ROOM`,
	}, {
		"colliding keys",
		`
		var icons = {
		  "room-living": {path: "M1"},
		  "room_living": {path: "M2"}
		};
		`,
		errdefs.DuplicateName,
		4,
		`normalizes to ROOM_LIVING`,
	}} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			records, err := convert(t, tc.input)
			require.Error(t, err)
			require.Nil(t, records)
			require.True(t, errdefs.IsKind(err, tc.kind), "%+v", err)

			var mie *errdefs.MalformedInputError
			require.True(t, errors.As(err, &mie))
			require.Equal(t, tc.kind, mie.Kind)

			spans := diagnostic.Spans(err)
			require.Len(t, spans, 1)
			require.Equal(t, tc.line, spans[0].Pos.Line)
			if tc.message != "" {
				require.NotEmpty(t, spans[0].Spans)
				require.Contains(t, spans[0].Spans[0].Message, tc.message)
			}
		})
	}
}

func TestConvert_DuplicateSpans(t *testing.T) {
	t.Parallel()

	_, err := convert(t, `
		var icons = {
		  "room": {path: "M1"},
		  "other": {path: "M2"},
		  "ROOM": {path: "M3"}
		};
	`)
	require.Error(t, err)

	spans := diagnostic.Spans(err)
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Spans, 2)
	require.Equal(t, diagnostic.Primary, spans[0].Spans[0].Type)
	require.Equal(t, 5, spans[0].Spans[0].Start.Line)
	require.Equal(t, diagnostic.Secondary, spans[0].Spans[1].Type)
	require.Equal(t, 3, spans[0].Spans[1].Start.Line)
}

func TestConvert_DuplicateSpansSameLine(t *testing.T) {
	t.Parallel()

	ctx := filebuffer.WithBuffers(context.Background(), filebuffer.NewBuffers())
	_, err := ConvertString(ctx, "icons.js", `x = {"a-b":{path:"Z"},"A_B":{path:"Y"}};`+"\n")
	require.Error(t, err)
	require.True(t, errdefs.IsKind(err, errdefs.DuplicateName))

	spans := diagnostic.Spans(err)
	require.Len(t, spans, 1)

	var stderr strings.Builder
	diagnostic.DisplayError(ctx, &stderr, err)
	lines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
	require.Equal(t, []string{
		"error: malformed input: duplicate name: identifier A_B defined more than once",
		"icons.js:1:23:",
		"  │ ",
		`1 │ x = {"a-b":{path:"Z"},"A_B":{path:"Y"}};`,
		"  │      -----",
		"  │      A_B first defined here",
		"  │ " + strings.Repeat(" ", 22) + "^^^^^",
		"  │ " + strings.Repeat(" ", 22) + "normalizes to A_B",
	}, lines)
}

func TestConvert_GroupsErrors(t *testing.T) {
	t.Parallel()

	_, err := convert(t, `
		var icons = {
		  "a": {keywords: []},
		  "b": {path: "M2"},
		  "c": {keywords: []}
		};
	`)
	require.Error(t, err)

	var de *diagnostic.Error
	require.True(t, errors.As(err, &de))
	require.Len(t, de.Diagnostics, 2)
	require.Len(t, diagnostic.Spans(err), 2)
	require.True(t, errdefs.IsKind(err, errdefs.MissingField))
}
