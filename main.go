package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	cli "github.com/urfave/cli/v3"

	v1 "title_builder/pkg/v1"
)

const (
	defaultRowFile    = "data_collection_template.csv"
	defaultColumnFile = "data_collection_template_V.csv"
	defaultHistoryDB  = "title_history.db"
)

// defaults holds values from the optional YAML config file, merged
// under the command-line flags.
var defaults v1.FileConfig

func loadDefaults(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	explicit := path != ""
	if !explicit {
		path = "title_builder.yaml"
	}
	cfg, err := v1.LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return ctx, nil
		}
		return ctx, err
	}
	defaults = *cfg
	return ctx, nil
}

func dataFile(cmd *cli.Command, fallback string) string {
	if p := cmd.Args().First(); p != "" {
		return p
	}
	if defaults.File != "" {
		return defaults.File
	}
	return fallback
}

func sessionConfig(cmd *cli.Command) v1.Config {
	cfg := v1.Config{
		Separator: cmd.String("separator"),
		AltMode:   cmd.Bool("alt"),
	}
	if cfg.Separator == "" {
		cfg.Separator = defaults.Separator
	}
	if !cmd.IsSet("alt") && defaults.AltMode != nil {
		cfg.AltMode = *defaults.AltMode
	}
	if defaults.SeedLayout != "" {
		cfg.Seed = v1.Timestamp(defaults.SeedLayout)
	}
	return cfg
}

func historyPath(cmd *cli.Command) string {
	if p := cmd.String("history-db"); p != "" {
		return p
	}
	if defaults.HistoryDB != "" {
		return defaults.HistoryDB
	}
	return defaultHistoryDB
}

// recordHistory saves a finished title when --history is set. Failures
// are reported and the title is still printed, matching the save-back
// policy.
func recordHistory(cmd *cli.Command, mode, title string) {
	if !cmd.Bool("history") {
		return
	}
	store, err := v1.OpenHistory(historyPath(cmd))
	if err != nil {
		v1.Log(v1.LogTypeError, "History unavailable", err.Error())
		return
	}
	defer store.Close()
	if err := store.Record(mode, title); err != nil {
		v1.Log(v1.LogTypeError, "History record failed", err.Error())
	}
}

func runRows(ctx context.Context, cmd *cli.Command) error {
	table, err := v1.LoadRowTable(dataFile(cmd, defaultRowFile))
	if err != nil {
		return err
	}
	sess := v1.NewRowSession(table, sessionConfig(cmd))
	title := v1.RunGUI(sess, v1.GUIOptions{Title: "Line Reader", SaveWord: true})
	fmt.Println(title)
	recordHistory(cmd, "rows", title)
	return nil
}

func runColumns(ctx context.Context, cmd *cli.Command) error {
	table, err := v1.LoadColumnTable(dataFile(cmd, defaultColumnFile))
	if err != nil {
		return err
	}
	sess := v1.NewColumnSession(table, sessionConfig(cmd))
	title := v1.RunGUI(sess, v1.GUIOptions{
		Title:   "Test Case Title Builder",
		MinSize: fyne.NewSize(400, 150),
	})
	fmt.Println(title)
	recordHistory(cmd, "columns", title)
	return nil
}

func runHistory(ctx context.Context, cmd *cli.Command) error {
	store, err := v1.OpenHistory(historyPath(cmd))
	if err != nil {
		return err
	}
	defer store.Close()
	entries, err := store.Recent(int(cmd.Int("limit")))
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  [%s]  %s\n", e.CreatedAt, e.Mode, e.Title)
	}
	return nil
}

func main() {
	app := &cli.Command{
		Name:            "title_builder",
		Usage:           "build test case titles from a CSV file of clickable options",
		HideHelpCommand: true,
		Before:          loadDefaults,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load defaults from `FILE` (YAML)"},
			&cli.StringFlag{Name: "history-db", Usage: "history database `FILE`"},
		},
		Commands: []*cli.Command{
			{
				Name:      "rows",
				Usage:     "Row-major mode: each CSV row is one title section",
				ArgsUsage: "[FILE]",
				Action:    runRows,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "separator", Aliases: []string{"s"}, Usage: "token `SEPARATOR` (default \"_\")"},
					&cli.BoolFlag{Name: "alt", Value: true, Usage: "clicking a button commits it immediately"},
					&cli.BoolFlag{Name: "history", Usage: "record the finished title in the history database"},
				},
			},
			{
				Name:      "columns",
				Usage:     "Column-major mode: each CSV column is one title section, untitled columns group as folders",
				ArgsUsage: "[FILE]",
				Action:    runColumns,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "separator", Aliases: []string{"s"}, Usage: "token `SEPARATOR` (default \" - \")"},
					&cli.BoolFlag{Name: "alt", Value: true, Usage: "clicking a button commits it immediately"},
					&cli.BoolFlag{Name: "history", Usage: "record the finished title in the history database"},
				},
			},
			{
				Name:   "history",
				Usage:  "List recently recorded titles",
				Action: runHistory,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum `N` entries to list"},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
