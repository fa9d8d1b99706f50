package diagnostic

import (
	"context"

	"github.com/bifrost-tools/hueicons/pkg/filebuffer"
	"github.com/logrusorgru/aurora"
)

type colorKey struct{}

// Sources returns the file buffers used to render spans.
func Sources(ctx context.Context) *filebuffer.BufferLookup {
	return filebuffer.Buffers(ctx)
}

func WithColor(ctx context.Context, color aurora.Aurora) context.Context {
	return context.WithValue(ctx, colorKey{}, color)
}

func Color(ctx context.Context) aurora.Aurora {
	color, ok := ctx.Value(colorKey{}).(aurora.Aurora)
	if !ok {
		return aurora.NewAurora(false)
	}
	return color
}
