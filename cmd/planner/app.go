package main

import (
	"aviation-route-planner/internal/adapters/backend"
	"aviation-route-planner/internal/config"
	"aviation-route-planner/internal/platform/obs"
	"aviation-route-planner/internal/services"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

type runtime struct {
	out     io.Writer
	cfg     config.Config
	planner *services.Planner
}

func newApp(out io.Writer) *cli.App {
	rt := &runtime{out: out}

	return &cli.App{
		Name:        "planner",
		Usage:       "manage locations and transportations, and search aviation routes",
		Description: "Command-line client for the aviation route planner backend",
		Writer:      out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file (default: planner.yml when present)",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "backend base URL, overrides config and BACKEND_URL",
			},
		},
		Before: rt.setup,
		Commands: []*cli.Command{
			locationsCommand(rt),
			transportationsCommand(rt),
			routesCommand(rt),
		},
	}
}

func (rt *runtime) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("backend") {
		cfg.BackendURL = c.String("backend")
	}
	rt.cfg = cfg

	obs.SetupLogger(os.Stderr, cfg.Log.Format, cfg.Log.Debug)

	client, err := backend.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	rt.planner = services.NewPlanner(client)

	return nil
}

// fail reports the shared error slot when it holds something, the error otherwise.
func (rt *runtime) fail(err error) error {
	msg := err.Error()
	if s := rt.planner.Status.Error(); s != "" {
		msg = s
	}
	return cli.Exit(msg, 1)
}

func (rt *runtime) printf(format string, args ...any) {
	fmt.Fprintf(rt.out, format, args...)
}

var errNotFound = errors.New("not found")
