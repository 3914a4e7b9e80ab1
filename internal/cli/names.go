package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alvinjchua888/mermaidexamples/internal/store"
)

const (
	promptFirstName = "Enter your first name: "
	promptLastName  = "Enter your last name: "

	createdAtLayout = "2006-01-02 15:04:05"
)

// StoreResult is the JSON payload for names store.
type StoreResult struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ListResult is the JSON payload for names list.
type ListResult struct {
	Records []store.Record `json:"records"`
	Count   int            `json:"count"`
}

// InitResult is the JSON payload for names init.
type InitResult struct {
	Database string `json:"database"`
}

// NewNamesCommand creates the names command group.
func NewNamesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Store and list first/last name pairs",
		Long: `Store and list first/last name pairs in a local SQLite database.

The database file defaults to names.db and can be changed with --db,
the config file or NAMEDB_DATABASE.`,
		Args: unknownCommand,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newNamesInitCommand(rootOpts))
	cmd.AddCommand(newNamesStoreCommand(rootOpts))
	cmd.AddCommand(newNamesListCommand(rootOpts))

	return cmd
}

func newNamesInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "init",
		Short:         "Create the names table if it does not exist",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamesInit(rootOpts, cmd)
		},
	}
}

func newNamesStoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "store [first-name last-name]",
		Short: "Store a first and last name",
		Long: `Store a first and last name.

Both names are trimmed and must not be empty. Prompts for them when they
are not given as arguments.

Examples:
  namedb names store
  namedb names store Jane Smith
  namedb names store Jane Smith --db ./people.db --format json`,
		Args:          exactlyZeroOrTwo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamesStore(rootOpts, args, cmd)
		},
	}
}

func newNamesListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored names in ID order",
		Long: `List all stored names in ID order.

A database file that does not exist yet lists as empty and is not created.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamesList(rootOpts, cmd)
		},
	}
}

func runNamesInit(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	if err := store.InitSchema(commandContext(cmd), opts.Database); err != nil {
		return f.Fail(err)
	}

	if f.IsJSON() {
		return f.Success(InitResult{Database: databasePath(opts)})
	}
	return f.Success(fmt.Sprintf("Database ready: %s", databasePath(opts)))
}

func runNamesStore(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	first, last, err := nameArgs(f, args, cmd)
	if err != nil {
		return f.Fail(err)
	}

	f.VerboseLog("storing name in %s", databasePath(opts))
	id, err := store.StoreName(commandContext(cmd), opts.Database, first, last)
	if err != nil {
		return f.Fail(err)
	}

	result := StoreResult{
		ID:        id,
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
	}
	if f.IsJSON() {
		return f.Success(result)
	}
	return f.Success(fmt.Sprintf("Successfully stored: %s %s (ID: %d)", result.FirstName, result.LastName, result.ID))
}

func runNamesList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	records, err := store.ListNames(commandContext(cmd), opts.Database)
	if err != nil {
		return f.Fail(err)
	}

	if f.IsJSON() {
		return f.Success(ListResult{Records: records, Count: len(records)})
	}
	writeNameTable(f.Writer, records)
	return nil
}

// nameArgs returns the two raw names from args or from the prompts.
func nameArgs(f *OutputFormatter, args []string, cmd *cobra.Command) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	p := NewPrompter(cmd.InOrStdin(), f.PromptWriter())
	return p.AskPair(promptFirstName, promptLastName)
}

// writeNameTable renders records as the fixed-width listing.
func writeNameTable(w io.Writer, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No names found in the database.")
		return
	}

	rule := strings.Repeat("-", 60)
	fmt.Fprintf(w, "Found %d name(s) in the database:\n", len(records))
	fmt.Fprintln(w, rule)
	for _, r := range records {
		fmt.Fprintf(w, "ID: %3d | %-15s %-15s | %s\n",
			r.ID, r.FirstName, r.LastName, r.CreatedAt.UTC().Format(createdAtLayout))
	}
	fmt.Fprintln(w, rule)
}

// databasePath returns the path the store helpers will open.
func databasePath(opts *RootOptions) string {
	if opts.Database == "" {
		return store.DefaultPath
	}
	return opts.Database
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// exactlyZeroOrTwo accepts either no positional args (interactive) or
// exactly two.
func exactlyZeroOrTwo(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("accepts 0 or 2 arg(s), received %d", len(args)))
	}
	return nil
}
