// Package commands implements the taskctl operator commands.
package commands

import (
	"context"
	"errors"
	"io"

	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// ErrNoRecordStore is returned by commands that need the task record store
// when none is configured.
var ErrNoRecordStore = errors.New("no task record store configured, set MONGO_URI")

// Deps are the collaborators the commands run against.
type Deps struct {
	Catalog     catalog.Client
	NoiseSource noise.SampleSource
	NoiseConfig noise.Config
	Clock       clockwork.Clock
	// OpenRecords connects to the task record store. The returned func
	// releases it.
	OpenRecords func(ctx context.Context) (repository.TaskRecordStore, func(), error)
}

// CLI represents the taskctl command line interface.
type CLI struct {
	deps    Deps
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given dependencies.
func New(deps Deps) *CLI {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	rootCmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Operator tools for the sample task service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		deps:    deps,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCatalogCmd())
	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newNoiseTestCmd())
	rootCmd.AddCommand(c.newTasksCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
