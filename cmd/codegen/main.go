package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	schemaKey  = "schema"
	outKey     = "out"
	packageKey = "package"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed accessors for reactive stores",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     schemaKey,
				Usage:    "YAML schema describing the stores",
				Required: true,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "stores_gen.go",
			},
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "Package name, overrides the schema's",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
