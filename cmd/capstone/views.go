package main

import (
	"flag"
	"fmt"
	"time"

	"capstone-hub/internal/schedule"
	"capstone-hub/internal/state"
)

func (cli *commandLine) calendar(mgr *state.Manager, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	month := fs.String("month", "", "month to render, 2006-01")
	week := fs.String("week", "", "date whose week to render, 2006-01-02")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *week != "" {
		ref, err := time.Parse("2006-01-02", *week)
		if err != nil {
			return fmt.Errorf("bad week date: %w", err)
		}
		for _, day := range schedule.WeekGrid(ref) {
			ms, ts := schedule.OnDay(mgr.Meetings(), mgr.Tasks(), day)
			fmt.Printf("%s %s  meetings=%d deadlines=%d\n",
				day.Weekday().String()[:3], day.Format("2006-01-02"), len(ms), len(ts))
		}
		return nil
	}

	ref := time.Now().UTC()
	if *month != "" {
		parsed, err := time.Parse("2006-01", *month)
		if err != nil {
			return fmt.Errorf("bad month: %w", err)
		}
		ref = parsed
	}

	fmt.Println(ref.Format("January 2006"))
	fmt.Println("Sun Mon Tue Wed Thu Fri Sat")
	col := 0
	for _, cell := range schedule.MonthGrid(ref.Year(), ref.Month()) {
		if cell.Blank {
			fmt.Print("    ")
		} else {
			ms, ts := schedule.OnDay(mgr.Meetings(), mgr.Tasks(), cell.Date)
			marker := " "
			if len(ms)+len(ts) > 0 {
				marker = "*"
			}
			fmt.Printf("%2d%s ", cell.Day, marker)
		}
		col++
		if col%7 == 0 {
			fmt.Println()
		}
	}
	if col%7 != 0 {
		fmt.Println()
	}
	return nil
}

func (cli *commandLine) day(mgr *state.Manager, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}
	day, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("bad day: %w", err)
	}
	ms, ts := schedule.OnDay(mgr.Meetings(), mgr.Tasks(), day)
	fmt.Printf("%s: %d meetings, %d deadlines\n", args[0], len(ms), len(ts))
	for _, m := range ms {
		printMeeting(m)
	}
	teams := mgr.Teams()
	for _, t := range ts {
		printTask(t, teams)
	}
	return nil
}

func (cli *commandLine) upcoming(mgr *state.Manager) error {
	now := time.Now()
	fmt.Println("upcoming meetings:")
	for _, m := range schedule.UpcomingMeetings(mgr.Meetings(), now) {
		printMeeting(m)
	}
	fmt.Println("recent tasks:")
	teams := mgr.Teams()
	for _, t := range schedule.RecentTasks(mgr.Tasks()) {
		printTask(t, teams)
	}
	return nil
}

func (cli *commandLine) overdue(mgr *state.Manager) error {
	now := time.Now()
	teams := mgr.Teams()
	for _, t := range mgr.Tasks() {
		if schedule.Overdue(t, now) {
			printTask(t, teams)
		}
	}
	return nil
}

func (cli *commandLine) stats(mgr *state.Manager) error {
	c := schedule.CountByStatus(mgr.Tasks())
	fmt.Printf("pending=%d in-progress=%d completed=%d review=%d teams=%d meetings=%d\n",
		c.Pending, c.InProgress, c.Completed, c.Review, len(mgr.Teams()), len(mgr.Meetings()))
	return nil
}

func (cli *commandLine) filter(mgr *state.Manager, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	expression := fs.String("expr", "", "boolean expression over task fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expression == "" {
		fs.Usage()
		return errHelp
	}
	matched, err := schedule.FilterTasks(mgr.Tasks(), *expression, time.Now())
	if err != nil {
		return err
	}
	teams := mgr.Teams()
	for _, t := range matched {
		printTask(t, teams)
	}
	return nil
}
