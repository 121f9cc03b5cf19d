package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List submitted tasks in submission order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.deps.OpenRecords == nil {
				return ErrNoRecordStore
			}

			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			if page < 1 {
				page = 1
			}
			if limit < 1 {
				limit = 20
			}

			records, release, err := c.deps.OpenRecords(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			tasks, total, err := records.List(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSESSION\tTYPE\tDURATION\tTIMESTAMP\tAUDIO")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%ds\t%s\t%s\n", t.ID.Hex(), t.SessionID, t.TaskType, t.DurationSeconds, t.Timestamp, t.AudioReference)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d tasks (page %d)\n", len(tasks), total, page)
			return nil
		},
	}
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 20, "Tasks per page")
	return cmd
}
