package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	dbpkg "github.com/dtnitsch/lumdoc/pkg/db"
)

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// RunsAction lists recorded generate runs, most recent first.
func RunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-7s %-9s %-9s %-8s %-8s %-30s\n",
		"ID", "Created", "Total", "Enhanced", "Fallback", "Syntax", "Example", "Output")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-7d %-9d %-9d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Total,
			r.Enhanced,
			r.Fallback,
			r.WithSyntax,
			r.WithExample,
			r.OutputPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'lumdoc db run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run, or the latest one.
func RunAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	filter := dbpkg.CommandFilter{
		Source:         c.String("source"),
		MissingExample: c.Bool("missing-example"),
		NamePattern:    c.String("name"),
	}
	commands, err := database.GetRunCommands(runID, filter)
	if err != nil {
		return fmt.Errorf("failed to get run commands: %w", err)
	}

	if c.String("format") == "yaml" {
		data, err := yaml.Marshal(struct {
			Run      *dbpkg.Run         `yaml:"run"`
			Commands []dbpkg.RunCommand `yaml:"commands"`
		}{run, commands})
		if err != nil {
			return fmt.Errorf("failed to marshal run: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Baseline:    %s\n", run.BaselinePath)
	fmt.Printf("Docs:        %s\n", run.DocsDir)
	fmt.Printf("Output:      %s\n", run.OutputPath)
	fmt.Printf("Commands:    %d total (%d enhanced, %d fallback)\n", run.Total, run.Enhanced, run.Fallback)
	fmt.Printf("Coverage:    %d with syntax, %d with example\n", run.WithSyntax, run.WithExample)
	fmt.Printf("Pages:       %d scanned, %d failed, %d orphans\n", run.DocsScanned, run.DocsFailed, run.Orphans)

	fmt.Printf("\nCommands (%d):\n", len(commands))
	for i, cmd := range commands {
		marks := ""
		if cmd.HasSyntax {
			marks += " syntax"
		}
		if cmd.HasExample {
			marks += " example"
		}
		fmt.Printf("%3d. [%s] %s%s\n", i+1, cmd.Source, cmd.Name, marks)
		if cmd.Summary != "" {
			fmt.Printf("     %s\n", cmd.Summary)
		}
	}

	fmt.Printf("\nTip: Use 'lumdoc db run %d --source fallback' to list undocumented commands\n", runID)
	return nil
}

// HistoryAction shows how one command fared across runs.
func HistoryAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("command name required\nUsage: lumdoc db history <name>")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	name := c.Args().First()
	history, err := database.CommandHistory(name, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	if len(history) == 0 {
		fmt.Printf("No runs recorded for %s\n", name)
		return nil
	}

	for i, h := range history {
		fmt.Printf("%2d. run %-5d [%s] syntax=%t example=%t %s\n", i+1, h.RunID, h.Source, h.HasSyntax, h.HasExample, h.Summary)
	}
	return nil
}
