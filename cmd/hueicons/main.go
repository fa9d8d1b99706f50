package main

import (
	"context"
	"os"

	"github.com/bifrost-tools/hueicons/cmd/hueicons/command"
	"github.com/bifrost-tools/hueicons/diagnostic"
	"github.com/bifrost-tools/hueicons/pkg/filebuffer"
	"github.com/logrusorgru/aurora"
	isatty "github.com/mattn/go-isatty"
)

func main() {
	ctx := filebuffer.WithBuffers(context.Background(), filebuffer.NewBuffers())
	ctx = diagnostic.WithColor(ctx, aurora.NewAurora(isatty.IsTerminal(os.Stderr.Fd())))

	app := command.App()
	if err := app.RunContext(ctx, os.Args); err != nil {
		diagnostic.DisplayError(ctx, os.Stderr, err, diagnostic.WithNumContext(1))
		os.Exit(1)
	}
}
