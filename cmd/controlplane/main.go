package main

import (
	"context"
	"log"
	"os"

	"github.com/rhythmiq/controlplane/internal/controlplane/app"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "controlplane",
		Usage:   "RhythmIQ control plane: Spotify OAuth broker and preference API",
		Version: app.BuildVersion,
		Action:  serve,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			paramsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func serve(context.Context, *cli.Command) error {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	return application.Run()
}
