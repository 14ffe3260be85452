package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"capstone-hub/internal/model"
	"capstone-hub/internal/state"
	"capstone-hub/internal/validate"
)

// teamName resolves a task assignment for display. A dangling reference is
// rendered as Unassigned rather than rejected.
func teamName(teams []model.Team, id string) string {
	for _, t := range teams {
		if t.ID == id {
			return t.Name
		}
	}
	return "Unassigned"
}

func printTask(t model.Task, teams []model.Team) {
	fmt.Printf("%s  %-32s  %-11s  %-6s  due=%s  team=%s\n",
		t.ID, t.Title, t.Status, t.Priority, t.Deadline, teamName(teams, t.AssignedTo))
}

func (cli *commandLine) tasks(ctx context.Context, mgr *state.Manager, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		teams := mgr.Teams()
		for _, t := range mgr.Tasks() {
			printTask(t, teams)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("tasks add", flag.ExitOnError)
		title := fs.String("title", "", "task title")
		desc := fs.String("desc", "", "task description")
		team := fs.String("team", "", "assigned team id")
		status := fs.String("status", model.StatusPending, "pending, in-progress, completed or review")
		priority := fs.String("priority", model.PriorityMedium, "low, medium or high")
		deadline := fs.String("deadline", "", "ISO date, e.g. 2026-09-15")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		in := state.TaskInput{
			Title:       strings.TrimSpace(*title),
			Description: *desc,
			AssignedTo:  *team,
			Status:      *status,
			Priority:    *priority,
			Deadline:    *deadline,
		}
		if err := validate.Task(in); err != nil {
			return err
		}
		t, err := mgr.AddTask(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("added task %s (%s)\n", t.Title, t.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("tasks update", flag.ExitOnError)
		id := fs.String("id", "", "task id")
		title := fs.String("title", "", "new title")
		desc := fs.String("desc", "", "new description")
		team := fs.String("team", "", "new assigned team id")
		status := fs.String("status", "", "new status")
		priority := fs.String("priority", "", "new priority")
		deadline := fs.String("deadline", "", "new deadline")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		var p state.TaskPatch
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				p.Title = title
			case "desc":
				p.Description = desc
			case "team":
				p.AssignedTo = team
			case "status":
				p.Status = status
			case "priority":
				p.Priority = priority
			case "deadline":
				p.Deadline = deadline
			}
		})
		if err := validate.TaskPatch(p); err != nil {
			return err
		}
		t, err := mgr.UpdateTask(ctx, *id, p)
		if err != nil {
			return err
		}
		fmt.Printf("updated task %s\n", t.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("tasks delete", flag.ExitOnError)
		id := fs.String("id", "", "task id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		if err := mgr.DeleteTask(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted task %s\n", *id)
		return nil
	}
	cli.printUsage()
	return errHelp
}
