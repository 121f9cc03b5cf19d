// Package main is the entry point for the taskctl operator tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"humanness-tasks/cmd/taskctl/commands"
	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/database"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The server's JWT secret is not needed here, so config.Load is not used
	_ = godotenv.Load()

	cli := commands.New(deps())
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}

func deps() commands.Deps {
	var source catalog.Client = catalog.NewStaticClient(nil, 0)
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		source = catalog.NewFileClient(path)
	}

	d := commands.Deps{
		Catalog:     catalog.NewRetryingClient(source, catalog.DefaultRetryConfig()),
		NoiseSource: noise.NewRandomSource(nil),
		NoiseConfig: noise.DefaultConfig(),
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		dbName := os.Getenv("MONGO_DATABASE")
		if dbName == "" {
			dbName = "humanness"
		}
		d.OpenRecords = func(ctx context.Context) (repository.TaskRecordStore, func(), error) {
			db, err := database.Connect(ctx, uri, dbName)
			if err != nil {
				return nil, nil, err
			}
			return repository.NewTaskRecordStore(db.Database, nil), db.Close, nil
		}
	}
	return d
}
