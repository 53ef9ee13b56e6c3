package main

import (
	"context"
	"fmt"

	"github.com/rhythmiq/controlplane/internal/controlplane/app"
	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server (default)",
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations and print the schema version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := app.OpenStore(app.LoadConfig())
			if err != nil {
				return err
			}
			defer db.Close()

			version, dirty, err := db.MigrationVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "schema version %d (dirty=%t)\n", version, dirty)
			return nil
		},
	}
}

func paramsCommand() *cli.Command {
	return &cli.Command{
		Name:  "params",
		Usage: "Manage stored configuration parameters",
		Commands: []*cli.Command{
			{
				Name:  "put",
				Usage: "Store a parameter value",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
					&cli.StringArg{Name: "value"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "secure",
						Usage: "Seal the value with the master key",
					},
				},
				Action: paramsPut,
			},
			{
				Name:  "get",
				Usage: "Print a parameter value",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: paramsGet,
			},
			{
				Name:  "spotify",
				Usage: "Store the Spotify application credentials in one step",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "client-id", Required: true},
					&cli.StringFlag{Name: "client-secret", Required: true},
					&cli.StringFlag{Name: "redirect-uri", Required: true},
				},
				Action: paramsSpotify,
			},
		},
	}
}

func paramsPut(ctx context.Context, cmd *cli.Command) error {
	name, value := cmd.StringArg("name"), cmd.StringArg("value")
	if name == "" || value == "" {
		return fmt.Errorf("usage: params put NAME VALUE [--secure]")
	}

	params, db, err := app.OpenParameters(app.LoadConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	return params.Put(ctx, name, value, cmd.Bool("secure"))
}

func paramsGet(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("usage: params get NAME")
	}

	params, db, err := app.OpenParameters(app.LoadConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := params.Get(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, p.Value)
	return nil
}

func paramsSpotify(ctx context.Context, cmd *cli.Command) error {
	params, db, err := app.OpenParameters(app.LoadConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	values := []struct {
		name   string
		value  string
		secure bool
	}{
		{domain.ParamSpotifyClientID, cmd.String("client-id"), false},
		{domain.ParamSpotifyClientSecret, cmd.String("client-secret"), true},
		{domain.ParamSpotifyRedirectURI, cmd.String("redirect-uri"), false},
	}
	for _, v := range values {
		if err := params.Put(ctx, v.name, v.value, v.secure); err != nil {
			return fmt.Errorf("store %s: %w", v.name, err)
		}
	}
	return nil
}
