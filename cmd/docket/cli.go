package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/ops"
	"github.com/docketlab/docket/internal/store"
	"github.com/docketlab/docket/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "docket",
		Usage:   "Case and hearing schedule tracker",
		Version: Version,
		Commands: []*cli.Command{
			weekCmd(st),
			casesCmd(st, cfg),
			eventsCmd(st),
			addHearingCmd(st),
			updateHearingCmd(st),
			deleteHearingCmd(st),
			tagCmd(st),
			untagCmd(st),
			exportCmd(st),
			serveCmd(st, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// weekCmd creates the week command.
func weekCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "Show the Monday–Friday schedule for a week",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Reference date (YYYY-MM-DD, default today)"},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON instead of the board"},
		},
		Action: func(c *cli.Context) error {
			ref := docket.DateOf(time.Now())
			if raw := c.String("date"); raw != "" {
				parsed, err := docket.ParseDate(raw)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				ref = parsed
			}

			layout := ops.WeeklyLayout(st.Events(), ops.WeeklyLayoutInput{Reference: ref})

			if c.Bool("json") {
				return outputJSON(layout)
			}

			printWeek(layout)
			return nil
		},
	}
}

// casesCmd creates the cases command (the grouped list view).
func casesCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "cases",
		Usage: "List hearings grouped by case, with search, filter and sort",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Substring matched against cases, tags and hearings"},
			&cli.StringFlag{Name: "status", Usage: "Status filter: all|new|rescheduled|cancelled", Value: "all"},
			&cli.StringFlag{Name: "sort", Usage: "Sort key: date|case|title"},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON instead of the table"},
		},
		Action: func(c *cli.Context) error {
			sortKey := c.String("sort")
			if sortKey == "" && cfg != nil {
				sortKey = cfg.DefaultSort
			}

			result, err := ops.QueryList(st.Cases(), st.Events(), ops.QueryListInput{
				Search: c.String("search"),
				Status: ops.StatusFilter(c.String("status")),
				Sort:   ops.SortKey(sortKey),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(result)
			}

			printGroups(result)
			return nil
		},
	}
}

// eventsCmd creates the events command.
func eventsCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Dump the flattened event projection as JSON",
		Action: func(c *cli.Context) error {
			return outputJSON(ops.ListEvents(st))
		},
	}
}

// addHearingCmd creates the add-hearing command.
func addHearingCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "add-hearing",
		Usage: "Schedule a new hearing on a case",
		Flags: append(hearingFlags(),
			&cli.StringFlag{Name: "case", Aliases: []string{"c"}, Required: true, Usage: "Owning case id"},
		),
		Action: func(c *cli.Context) error {
			output, err := ops.AddHearing(st, ops.AddHearingInput{
				CaseID:  c.String("case"),
				Hearing: hearingFieldsFromFlags(c),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// updateHearingCmd creates the update-hearing command.
func updateHearingCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "update-hearing",
		Usage:     "Replace all fields of an existing hearing",
		ArgsUsage: "<hearing-id>",
		Flags: append(hearingFlags(),
			&cli.StringFlag{Name: "case", Aliases: []string{"c"}, Required: true, Usage: "Owning case id"},
		),
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("hearing id argument is required"))
			}

			output, err := ops.UpdateHearing(st, ops.UpdateHearingInput{
				CaseID:    c.String("case"),
				HearingID: c.Args().First(),
				Hearing:   hearingFieldsFromFlags(c),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// deleteHearingCmd creates the delete-hearing command.
func deleteHearingCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "delete-hearing",
		Usage:     "Delete a hearing by id",
		ArgsUsage: "<hearing-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("hearing id argument is required"))
			}

			output, err := ops.RemoveHearing(st, ops.RemoveHearingInput{HearingID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// tagCmd creates the tag command.
func tagCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Add a tag to a case",
		ArgsUsage: "<case-id> <tag>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("case id and tag arguments are required"))
			}

			output, err := ops.AddTag(st, ops.AddTagInput{
				CaseID: c.Args().Get(0),
				Tag:    c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// untagCmd creates the untag command.
func untagCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "untag",
		Usage:     "Remove a tag from a case",
		ArgsUsage: "<case-id> <tag>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("case id and tag arguments are required"))
			}

			output, err := ops.RemoveTag(st, ops.RemoveTagInput{
				CaseID: c.Args().Get(0),
				Tag:    c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the hearing schedule as an iCalendar file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Destination file path (.ics)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.ExportICS(st.Events(), ops.ExportICSInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Usage: "Bind address (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			serveCfg := *cfg
			if listen := c.String("listen"); listen != "" {
				serveCfg.Listen = listen
			}
			return web.Run(web.NewServer(st, &serveCfg, Version))
		},
	}
}

// hearingFlags returns the flags shared by add-hearing and update-hearing.
func hearingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true, Usage: "Hearing title"},
		&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Required: true, Usage: "Calendar day (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "start", Required: true, Usage: "Start time (HH:MM)"},
		&cli.StringFlag{Name: "end", Usage: "End time (HH:MM)"},
		&cli.StringFlag{Name: "notes", Usage: "Free-text notes"},
		&cli.StringFlag{Name: "status", Usage: "Status: new|rescheduled|cancelled", Value: "new"},
	}
}

// hearingFieldsFromFlags builds HearingFields from the shared flags.
func hearingFieldsFromFlags(c *cli.Context) ops.HearingFields {
	return ops.HearingFields{
		Title:     c.String("title"),
		Notes:     c.String("notes"),
		Date:      c.String("date"),
		StartTime: c.String("start"),
		EndTime:   c.String("end"),
		Status:    c.String("status"),
	}
}

// Output helpers

// printWeek renders the weekly board with one section per weekday.
func printWeek(layout *ops.WeeklyLayoutOutput) {
	dayTitle := color.New(color.Bold, color.Underline)
	halfTitle := color.New(color.Faint)
	cancelled := color.New(color.Faint, color.CrossedOut)
	none := color.New(color.Faint, color.Italic)

	for _, day := range layout.Days {
		fmt.Println("")
		fmt.Println(dayTitle.Sprintf("%s %s", day.Date.Weekday(), day.Date))

		for _, half := range []struct {
			label  string
			events []docket.Event
		}{
			{"morning", day.Morning},
			{"afternoon", day.Afternoon},
		} {
			fmt.Println(halfTitle.Sprintf("  %s", half.label))
			if len(half.events) == 0 {
				fmt.Println(none.Sprint("    none"))
				continue
			}
			for _, e := range half.events {
				line := fmt.Sprintf("    %s  %s [%s]", e.StartTime, e.Title, e.Status)
				if e.Status == docket.StatusCancelled {
					fmt.Println(cancelled.Sprint(line))
				} else {
					fmt.Println(line)
				}
			}
		}
	}
	fmt.Println("")
}

// printGroups renders the grouped list view as per-case tables.
func printGroups(result *ops.QueryListOutput) {
	caseTitle := color.New(color.Bold)
	tagStyle := color.New(color.FgHiYellow, color.Italic)

	if len(result.Groups) == 0 {
		fmt.Println(color.New(color.Faint, color.Italic).Sprint("no hearings match"))
		return
	}

	for _, g := range result.Groups {
		fmt.Println("")
		line := caseTitle.Sprintf("%s  %s", g.CaseNumber, g.Case.Title)
		for _, tag := range g.Case.Tags {
			line += tagStyle.Sprintf("  #%s", tag)
		}
		fmt.Println(line)

		table := uitable.New()
		table.MaxColWidth = 60
		table.AddRow("  ID", "DATE", "TIME", "HEARING", "STATUS")
		for _, e := range g.Hearings {
			span := e.StartTime
			if e.EndTime != "" {
				span += "-" + e.EndTime
			}
			table.AddRow("  "+e.ID, e.Date.String(), span, e.Title, string(e.Status))
		}
		fmt.Println(table)
	}
	fmt.Println("")
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if dErr, ok := err.(*errors.DocketError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", dErr.Code, dErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
