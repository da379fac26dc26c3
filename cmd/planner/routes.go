package main

import (
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/services"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// resolveLocationID accepts a location id, or a location code known to the store.
func resolveLocationID(store *services.Store, arg string) domain.ID {
	id := domain.ID(arg)
	if _, ok := store.LocationByID(id); ok {
		return id
	}
	if l, ok := store.LocationByCode(arg); ok {
		return l.ID
	}
	return id
}

func routesCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "search routes between two locations",
		Subcommands: []*cli.Command{
			{
				Name:  "search",
				Usage: "find route options for a date",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "origin", Usage: "origin location id or code"},
					&cli.StringFlag{Name: "destination", Usage: "destination location id or code"},
					&cli.StringFlag{Name: "date", Usage: "travel date YYYY-MM-DD", Value: domain.Today()},
				},
				Action: func(c *cli.Context) error {
					store := rt.planner.Store
					// Names are best effort: routes still print with raw codes.
					if _, err := store.LoadLocations(c.Context); err != nil {
						log.Warn().Err(err).Msg("locations unavailable, showing raw codes")
					}

					search := rt.planner.Search
					search.SetOrigin(resolveLocationID(store, c.String("origin")))
					search.SetDestination(resolveLocationID(store, c.String("destination")))
					search.SetDate(c.String("date"))

					if _, err := search.Search(c.Context); err != nil {
						return rt.fail(err)
					}

					routes := search.Composed()
					if len(routes) == 0 {
						rt.printf("No routes found\n")
						return nil
					}
					for _, r := range routes {
						rt.printf("%s\n  %s\n", r.Title(), r)
					}
					return nil
				},
			},
		},
	}
}
