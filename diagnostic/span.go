package diagnostic

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/logrusorgru/aurora"
)

type Type int

const (
	Primary Type = iota
	Secondary
)

type Span struct {
	Message string
	Type    Type
	Start   lexer.Position
	End     lexer.Position
}

type Option func(*SpanError)

func Spanf(t Type, start, end lexer.Position, format string, a ...interface{}) Option {
	return func(se *SpanError) {
		se.Spans = append(se.Spans, Span{
			Message: fmt.Sprintf(format, a...),
			Type:    t,
			Start:   start,
			End:     end,
		})
	}
}

func WithError(err error, pos, end lexer.Position, opts ...Option) error {
	se := &SpanError{
		Err: err,
		Pos: pos,
		End: end,
	}
	for _, opt := range opts {
		opt(se)
	}
	return se
}

type SpanError struct {
	Err      error
	Pos, End lexer.Position
	Spans    []Span
}

func (se *SpanError) Error() string {
	return fmt.Sprintf("%s %s", FormatPos(se.Pos), se.Err)
}

func (se *SpanError) Unwrap() error {
	return se.Err
}

type PrettyOption func(*PrettyInfo)

type PrettyInfo struct {
	NumContext int
}

func WithNumContext(num int) PrettyOption {
	return func(info *PrettyInfo) {
		info.NumContext = num
	}
}

// Pretty renders the error with the source lines of every span, each
// underlined and annotated with its message.
func (se *SpanError) Pretty(ctx context.Context, opts ...PrettyOption) string {
	var (
		info    PrettyInfo
		reports []string
		sources = Sources(ctx)
		color   = Color(ctx)
	)
	for _, opt := range opts {
		opt(&info)
	}
	maxLn := se.maxLn(ctx, info.NumContext)
	gutter := strings.Repeat(" ", maxLn)

	filenames, spansByFilename := se.groupAnnotations()
	for _, filename := range filenames {
		fb := sources.Get(filename)

		// Sort spans in the same file by line number, then by column.
		spans := spansByFilename[filename]
		if len(spans) == 0 || fb == nil {
			continue
		}

		sort.SliceStable(spans, func(i, j int) bool {
			if spans[i].Start.Line != spans[j].Start.Line {
				return spans[i].Start.Line < spans[j].Start.Line
			}
			return spans[i].Start.Column < spans[j].Start.Column
		})

		// Construct the header for this group of spans.
		pos := spans[0].Start
		if filename == se.Pos.Filename {
			pos = se.Pos
		}
		header := color.Sprintf(color.Underline("%s:%d:%d:"),
			pos.Filename, pos.Line, pos.Column,
		)

		// Initialize the previous line number, this will be updated after every
		// span to determine how the next span render should join with the previous.
		// (i.e. if there's a gap or there's overlap).
		prevLn := spans[0].Start.Line - info.NumContext - 1
		if prevLn < 0 {
			prevLn = 0
		}

		var sections []string
		for i, span := range spans {
			var (
				underline string
				msgColor  func(interface{}) aurora.Value
			)
			switch span.Type {
			case Primary:
				underline = "^"
				msgColor = color.Red
			case Secondary:
				underline = "-"
				msgColor = color.Green
			}

			data, err := fb.Line(span.Start.Line - 1)
			if err != nil {
				reports = append(reports, err.Error())
				continue
			}

			// Calculate padding for the underline and message.
			pad := padding(data, span.Start.Column)

			// A span on the line of the previous span is annotated under the
			// line already printed.
			sameLine := i > 0 && span.Start.Line <= prevLn

			before := span.Start.Line - info.NumContext
			if before < 1 {
				before = 1
			}
			if before < prevLn+1 {
				before = prevLn + 1
			}
			if before > span.Start.Line {
				before = span.Start.Line
			}

			var (
				lines []string
				start int
			)
			if i == 0 && info.NumContext == 0 {
				lines = append(lines, color.Sprintf(color.Blue("%s │ "), gutter))
				start++
			} else if !sameLine && before-prevLn > 1 {
				// If the next span is more than one line away from the previous,
				// connect with a triple dot.
				lines = append(lines, color.Sprintf(color.Blue("%s ⫶"), gutter))
				start++
			}

			// Add lines of leading context.
			for ln := before; ln < span.Start.Line; ln++ {
				leading, err := fb.Line(ln - 1)
				if err != nil {
					lines = append(lines, err.Error())
					continue
				}
				lines = append(lines, string(leading))
			}

			// Add line for the span.
			width := span.End.Column - span.Start.Column
			if span.End.Line != span.Start.Line || width < 1 {
				width = 1
			}
			if !sameLine {
				lines = append(lines, string(data))
			}
			lines = append(lines, color.Sprintf(msgColor("%s%s"), pad, strings.Repeat(underline, width)))

			// Offset is the number of lines taken by the underline and message.
			offset := 1
			if len(span.Message) > 0 {
				messageLines := strings.Split(span.Message, "\n")
				offset = len(messageLines) + 1
				for _, line := range messageLines {
					lines = append(lines, color.Sprintf("%s%s", pad, msgColor(line)))
				}
			}

			// Add lines of trailing context.
			after := span.Start.Line + info.NumContext + 1
			if after > fb.Len()+1 {
				after = fb.Len() + 1
			}
			if i < len(spans)-1 {
				nextBefore := spans[i+1].Start.Line - info.NumContext
				if nextBefore <= span.Start.Line {
					after = span.Start.Line + 1
				}
			}
			for ln := span.Start.Line + 1; ln < after; ln++ {
				trailing, err := fb.Line(ln - 1)
				if err != nil {
					lines = append(lines, err.Error())
					continue
				}
				lines = append(lines, string(trailing))
			}

			// Add line numbers.
			for j := start; j < len(lines); j++ {
				var ln string
				index := j - start
				if sameLine {
					// The line for the span was printed by the previous span.
					index++
				}
				if index <= span.Start.Line-before {
					// Add line numbers before the underline & message.
					ln = fmt.Sprintf("%d", before+index)
				} else if index > span.Start.Line-before+offset {
					// Add line numbers after the underline & message.
					ln = fmt.Sprintf("%d", before+index-offset)
				}
				prefix := color.Sprintf(color.Blue("%s%s │ "), ln, strings.Repeat(" ", maxLn-len(ln)))
				lines[j] = fmt.Sprintf("%s%s", prefix, lines[j])
			}

			sections = append(sections, strings.Join(lines, "\n"))
			prevLn = after - 1
		}

		reports = append(reports, fmt.Sprintf("%s\n%s", header, strings.Join(sections, "\n")))
	}

	var title string
	if se.Err != nil {
		title = color.Sprintf(
			"%s: %s\n",
			color.Bold(color.Red("error")),
			color.Bold(se.Err),
		)
	}
	return fmt.Sprintf("%s%s", title, strings.Join(reports, "\n"))
}

// padding blanks out everything before the 1-indexed column, keeping tabs so
// the underline stays aligned.
func padding(data []byte, column int) string {
	runes := []rune(string(data))
	end := column - 1
	if end > len(runes) {
		end = len(runes)
	}
	if end < 0 {
		end = 0
	}
	pad := make([]rune, end)
	for i, r := range runes[:end] {
		if unicode.IsSpace(r) {
			pad[i] = r
		} else {
			pad[i] = ' '
		}
	}
	return string(pad)
}

func (se *SpanError) maxLn(ctx context.Context, numContext int) int {
	maxLn := 1
	for _, span := range se.Spans {
		line := span.Start.Line + numContext
		if fb := Sources(ctx).Get(span.Start.Filename); fb != nil && line > fb.Len() {
			line = fb.Len()
		}
		if ln := len(fmt.Sprintf("%d", line)); ln > maxLn {
			maxLn = ln
		}
	}
	return maxLn
}

func (se *SpanError) groupAnnotations() (filenames []string, spansByFilename map[string][]Span) {
	spansByFilename = make(map[string][]Span)
	for _, span := range se.Spans {
		spansByFilename[span.Start.Filename] = append(spansByFilename[span.Start.Filename], span)
	}
	for filename := range spansByFilename {
		if filename == se.Pos.Filename {
			continue
		}
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)
	return append([]string{se.Pos.Filename}, filenames...), spansByFilename
}

// FormatPos returns a lexer.Position formatted as a string.
func FormatPos(pos lexer.Position) string {
	return fmt.Sprintf("%s:%d:%d:", pos.Filename, pos.Line, pos.Column)
}

// Offset moves pos by a number of columns and lines.
func Offset(pos lexer.Position, offset int, line int) lexer.Position {
	pos.Offset += offset
	pos.Column += offset
	pos.Line += line
	return pos
}
