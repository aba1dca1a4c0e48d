package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xsdkit/xsdgen/internal/gen"
)

const (
	outputFlag        = "output"
	packageBaseFlag   = "packageBase"
	overridesFileFlag = "overridesFile"
	quietFlag         = "quiet"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./gen",
		Usage:   "Output directory for the generated packages",
	},
	&cli.StringFlag{
		Name:    packageBaseFlag,
		Aliases: []string{"p"},
		Value:   "",
		Usage:   "Import path prefix of the generated packages",
	},
	&cli.StringFlag{
		Name:  overridesFileFlag,
		Value: gen.DefaultOverridesFile,
		Usage: "File to read per-namespace package overrides from.",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no schema files given, usage: xsdgen generate [options] <schema.xsd>...")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if ctx.Bool(quietFlag) {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}

	return gen.New().Build(&gen.Config{
		Debugger:      logger,
		SchemaFiles:   ctx.Args().Slice(),
		OutputDir:     ctx.String(outputFlag),
		PackageBase:   ctx.String(packageBaseFlag),
		OverridesFile: ctx.String(overridesFileFlag),
	})
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate Go source code from XML Schema documents."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate Go packages from the given schema files, in order",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
