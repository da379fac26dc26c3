package main

import (
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/services"
	"fmt"

	"github.com/urfave/cli/v2"
)

func transportationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "origin", Usage: "origin location code"},
		&cli.StringFlag{Name: "destination", Usage: "destination location code"},
		&cli.StringFlag{Name: "type", Usage: "one of FLIGHT, BUS, UBER, SUBWAY"},
		&cli.IntSliceFlag{Name: "day", Usage: "toggle an operating day (1=Mon ... 7=Sun); repeatable"},
	}
}

// editTransportation applies the given flags to the open draft, then submits it.
func editTransportation(c *cli.Context, session *services.TransportationSession) error {
	var typ domain.TransportationType
	if c.IsSet("type") {
		t, err := domain.ParseTransportationType(c.String("type"))
		if err != nil {
			return err
		}
		typ = t
	}

	err := session.Update(func(d domain.TransportationDraft) domain.TransportationDraft {
		if c.IsSet("origin") {
			d = d.WithOriginCode(c.String("origin"))
		}
		if c.IsSet("destination") {
			d = d.WithDestinationCode(c.String("destination"))
		}
		if c.IsSet("type") {
			d = d.WithTransportationType(typ)
		}
		return d
	})
	if err != nil {
		return err
	}

	for _, day := range c.IntSlice("day") {
		if err := session.ToggleDay(day); err != nil {
			return err
		}
	}

	return session.Submit(c.Context)
}

func transportationsCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:    "transportations",
		Aliases: []string{"transportation"},
		Usage:   "list and edit transportations",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all transportations",
				Action: func(c *cli.Context) error {
					store := rt.planner.Store
					if err := store.LoadAll(c.Context); err != nil {
						return rt.fail(err)
					}
					for _, t := range store.Transportations() {
						rt.printf("%s\t%s\tType: %s\tOperating Days: %s\n",
							t.ID,
							services.DescribeTransportation(t, store),
							t.TransportationType,
							domain.FormatDays(t.OperatingDays),
						)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "create a transportation",
				Flags: transportationFlags(),
				Action: func(c *cli.Context) error {
					session := rt.planner.Transportations
					session.OpenAdd()
					if err := editTransportation(c, session); err != nil {
						return rt.fail(err)
					}
					rt.printf("transportation created\n")
					return nil
				},
			},
			{
				Name:      "edit",
				Usage:     "update a transportation; --day toggles days on the current set",
				ArgsUsage: "ID",
				Flags:     transportationFlags(),
				Action: func(c *cli.Context) error {
					id := domain.ID(c.Args().First())
					if !id.IsSet() {
						return cli.Exit("transportation id is required", 1)
					}
					if _, err := rt.planner.Store.LoadTransportations(c.Context); err != nil {
						return rt.fail(err)
					}
					t, ok := rt.planner.Store.TransportationByID(id)
					if !ok {
						return cli.Exit(fmt.Sprintf("transportation %s: %v", id, errNotFound), 1)
					}

					session := rt.planner.Transportations
					if err := session.OpenEdit(t); err != nil {
						return rt.fail(err)
					}
					if err := editTransportation(c, session); err != nil {
						return rt.fail(err)
					}
					rt.printf("transportation %s updated\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a transportation",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id := domain.ID(c.Args().First())
					if err := rt.planner.Store.DeleteTransportation(c.Context, id); err != nil {
						return rt.fail(err)
					}
					rt.printf("transportation %s deleted\n", id)
					return nil
				},
			},
		},
	}
}
