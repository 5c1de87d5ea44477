package main

import (
	"github.com/alecthomas/kong"

	"github.com/zadoox/xmd/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("xmd"),
		kong.Description("XMD structured document engine"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
