package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "userhub"
	app.Usage = "User lifecycle service"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to the toml configuration file",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the user api service",
			Category:    "Api",
			Description: `Serves the user CRUD api over http and publishes lifecycle events.`,
		},
		{
			Action:      s.migrate,
			Name:        "migrate",
			Usage:       "Apply the database schema",
			Category:    "Database",
			Description: `Creates or updates the user table on the configured database.`,
		},
	}
	s.app = app
}
