package main

import (
	"aviation-route-planner/internal/domain"
	"fmt"

	"github.com/urfave/cli/v2"
)

func locationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "city"},
		&cli.StringFlag{Name: "country"},
		&cli.StringFlag{Name: "code", Usage: "location code, e.g. IST"},
	}
}

// applyLocationFlags copies only the flags that were given onto the draft.
func applyLocationFlags(c *cli.Context, d domain.LocationDraft) domain.LocationDraft {
	if c.IsSet("name") {
		d = d.WithName(c.String("name"))
	}
	if c.IsSet("city") {
		d = d.WithCity(c.String("city"))
	}
	if c.IsSet("country") {
		d = d.WithCountry(c.String("country"))
	}
	if c.IsSet("code") {
		d = d.WithLocationCode(c.String("code"))
	}
	return d
}

func locationsCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:    "locations",
		Aliases: []string{"location"},
		Usage:   "list and edit locations",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all locations",
				Action: func(c *cli.Context) error {
					locations, err := rt.planner.Store.LoadLocations(c.Context)
					if err != nil {
						return rt.fail(err)
					}
					for _, l := range locations {
						rt.printf("%s\t%s\t%s, %s\tCode: %s\n", l.ID, l.Name, l.City, l.Country, l.LocationCode)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "create a location",
				Flags: locationFlags(),
				Action: func(c *cli.Context) error {
					session := rt.planner.Locations
					session.OpenAdd()
					if err := session.Update(func(d domain.LocationDraft) domain.LocationDraft {
						return applyLocationFlags(c, d)
					}); err != nil {
						return rt.fail(err)
					}
					if err := session.Submit(c.Context); err != nil {
						return rt.fail(err)
					}
					rt.printf("location created\n")
					return nil
				},
			},
			{
				Name:      "edit",
				Usage:     "update a location; omitted fields keep their value",
				ArgsUsage: "ID",
				Flags:     locationFlags(),
				Action: func(c *cli.Context) error {
					id := domain.ID(c.Args().First())
					if !id.IsSet() {
						return cli.Exit("location id is required", 1)
					}
					if _, err := rt.planner.Store.LoadLocations(c.Context); err != nil {
						return rt.fail(err)
					}
					loc, ok := rt.planner.Store.LocationByID(id)
					if !ok {
						return cli.Exit(fmt.Sprintf("location %s: %v", id, errNotFound), 1)
					}

					session := rt.planner.Locations
					if err := session.OpenEdit(loc); err != nil {
						return rt.fail(err)
					}
					if err := session.Update(func(d domain.LocationDraft) domain.LocationDraft {
						return applyLocationFlags(c, d)
					}); err != nil {
						return rt.fail(err)
					}
					if err := session.Submit(c.Context); err != nil {
						return rt.fail(err)
					}
					rt.printf("location %s updated\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a location and refresh transportations",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id := domain.ID(c.Args().First())
					if err := rt.planner.Store.DeleteLocation(c.Context, id); err != nil {
						return rt.fail(err)
					}
					rt.printf("location %s deleted\n", id)
					return nil
				},
			},
		},
	}
}
