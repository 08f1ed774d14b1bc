package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

var version = "dev"

type CLI struct {
	Edit    EditCmd    `cmd:"" help:"Open a file in your editor"`
	New     NewCmd     `cmd:"" help:"Compose text in your editor and print the result"`
	Which   WhichCmd   `cmd:"" help:"Show which editor would be used"`
	Version VersionCmd `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("edt"),
		kong.Description("Edit text in your preferred editor"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
		kongplete.WithPredictor("editor", newEditorPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
