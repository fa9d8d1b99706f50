package command

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/bifrost-tools/hueicons"
	"github.com/bifrost-tools/hueicons/codegen"
	"github.com/bifrost-tools/hueicons/config"
	"github.com/bifrost-tools/hueicons/parser"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
)

func App() *cli.App {
	app := cli.NewApp()
	app.Name = "hueicons"
	app.Usage = "generates icon constants from hass-hue-icons"
	app.Description = "reads the hass-hue-icons javascript source and prints one constant declaration per icon"
	app.ArgsUsage = "[ <hass-hue-icons.js> ]"
	app.Version = hueicons.Version
	app.HideVersion = true
	app.Commands = []*cli.Command{
		versionCommand,
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "header",
			Usage:   "prefix the output with the upstream license banner",
			EnvVars: []string{"HUEICONS_HEADER"},
		},
		&cli.StringFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   "language of the generated constants (rust, go)",
			EnvVars: []string{"HUEICONS_TARGET"},
		},
		&cli.StringFlag{
			Name:    "package",
			Usage:   "package name of generated go files",
			EnvVars: []string{"HUEICONS_PACKAGE"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the constants to a file instead of stdout",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load options from a yaml file",
			EnvVars: []string{"HUEICONS_CONFIG"},
		},
	}
	app.Action = generateAction
	return app
}

func generateAction(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.Errorf("expected at most one input file, got %d", c.NArg())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	r, cleanup, err := openInput(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if !c.IsSet("output") {
		return Generate(c.Context, r, c.App.Writer, cfg)
	}

	var buf bytes.Buffer
	err = Generate(c.Context, r, &buf, cfg)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(c.String("output"), buf.Bytes(), 0o644))
}

// Generate converts the icon-definition source read from r and writes the
// constants to w. Nothing is written to w on failure.
func Generate(ctx context.Context, r io.Reader, w io.Writer, cfg *config.Config) error {
	cg, err := codegen.New(cfg.CodeGenOptions()...)
	if err != nil {
		return err
	}

	records, err := hueicons.Convert(ctx, r)
	if err != nil {
		return err
	}

	return cg.Generate(w, records)
}

// loadConfig merges flags and environment variables over the config file,
// which itself is merged over the defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if c.IsSet("config") {
		var err error
		cfg, err = config.Load(c.String("config"))
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("target") {
		target, err := codegen.ParseTarget(c.String("target"))
		if err != nil {
			return nil, err
		}
		cfg.Target = target
	}
	if c.IsSet("package") {
		cfg.Package = c.String("package")
	}
	if c.IsSet("header") {
		cfg.Header = c.Bool("header")
	}
	return cfg, nil
}

func openInput(c *cli.Context) (r io.Reader, cleanup func() error, err error) {
	cleanup = func() error { return nil }
	if c.NArg() == 0 {
		return &parser.NamedReader{Reader: c.App.Reader, Value: "<stdin>"}, cleanup, nil
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return nil, cleanup, errors.WithStack(err)
	}
	return f, f.Close, nil
}
