package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kettleby/ripple/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const maxArityKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the multi-source watcher variants",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest watcher arity to generate",
				Value: 6,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	log.Printf("Max watcher arity: %d", maxArity)

	contents := templates.WatchersGen(maxArity)
	return os.WriteFile("watch_gen.go", []byte(contents), 0644)
}
