package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/proxyparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const defaultPackage = "stores"

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for stores started !")
	defer func() {
		log.Printf("Codegen for stores finished in %v", time.Since(start))
	}()

	b, err := os.ReadFile(cmd.String(schemaKey))
	if err != nil {
		return err
	}

	src, err := render(b, cmd.String(packageKey))
	if err != nil {
		return err
	}

	out := cmd.String(outKey)
	log.Printf("Writing %s", out)
	return os.WriteFile(out, src, 0644)
}

// render turns a YAML schema into formatted Go source. pkg overrides the
// schema's package when set.
func render(schema []byte, pkg string) ([]byte, error) {
	s, err := templates.LoadSchema(schema)
	if err != nil {
		return nil, err
	}

	switch {
	case pkg != "":
	case s.Package != "":
		pkg = s.Package
	default:
		pkg = defaultPackage
	}

	contents := templates.Accessors(pkg, s.Stores)
	src, err := format.Source([]byte(contents))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
