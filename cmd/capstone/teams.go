package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"capstone-hub/internal/state"
	"capstone-hub/internal/validate"
)

func (cli *commandLine) dispatch(ctx context.Context, mgr *state.Manager, cmd string, args []string) error {
	switch cmd {
	case "teams":
		return cli.teams(ctx, mgr, args)
	case "tasks":
		return cli.tasks(ctx, mgr, args)
	case "meetings":
		return cli.meetings(ctx, mgr, args)
	case "calendar":
		return cli.calendar(mgr, args)
	case "day":
		return cli.day(mgr, args)
	case "upcoming":
		return cli.upcoming(mgr)
	case "overdue":
		return cli.overdue(mgr)
	case "stats":
		return cli.stats(mgr)
	case "filter":
		return cli.filter(mgr, args)
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) teams(ctx context.Context, mgr *state.Manager, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		for _, t := range mgr.Teams() {
			fmt.Printf("%s  %-24s  leader=%s  members=%s  created=%s\n",
				t.ID, t.Name, t.LeaderID, strings.Join(t.Members, ", "),
				t.CreatedAt.Format("2006-01-02"))
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("teams add", flag.ExitOnError)
		name := fs.String("name", "", "team name")
		members := fs.String("members", "", "comma-separated member names")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		in := state.TeamInput{
			Name:    strings.TrimSpace(*name),
			Members: validate.Strings(strings.Split(*members, ",")),
		}
		if err := validate.Team(in); err != nil {
			return err
		}
		t, err := mgr.AddTeam(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("added team %s (%s)\n", t.Name, t.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("teams update", flag.ExitOnError)
		id := fs.String("id", "", "team id")
		name := fs.String("name", "", "new team name")
		members := fs.String("members", "", "comma-separated member names")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		var p state.TeamPatch
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				p.Name = name
			case "members":
				cleaned := validate.Strings(strings.Split(*members, ","))
				p.Members = &cleaned
			}
		})
		if err := validate.TeamPatch(p); err != nil {
			return err
		}
		t, err := mgr.UpdateTeam(ctx, *id, p)
		if err != nil {
			return err
		}
		fmt.Printf("updated team %s\n", t.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("teams delete", flag.ExitOnError)
		id := fs.String("id", "", "team id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		if err := mgr.DeleteTeam(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted team %s\n", *id)
		return nil
	}
	cli.printUsage()
	return errHelp
}
