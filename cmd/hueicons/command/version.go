package command

import (
	"fmt"

	"github.com/bifrost-tools/hueicons"
	cli "github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "prints hueicons tool version",
	Action: func(c *cli.Context) error {
		fmt.Fprintln(c.App.Writer, hueicons.Version)
		return nil
	},
}
