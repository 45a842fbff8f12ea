package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tensix-io/acled-client/pkg/acled"
)

// NewDeletedCommand creates the deleted command.
func NewDeletedCommand() *cobra.Command {
	var (
		eventID    string
		minDeleted uint64
		date       string
	)

	cmd := &cobra.Command{
		Use:     "deleted",
		Aliases: []string{"del"},
		Short:   "List deleted records",
		Long: `Query the deleted endpoint for records removed from the dataset,
following pagination to completion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeletedList(eventID, minDeleted, date)
		},
	}

	cmd.Flags().StringVar(&eventID, "event-id", "", "filter by event identifier")
	cmd.Flags().Uint64Var(&minDeleted, "min-deleted", 0, "filter by minimum deletion timestamp (inclusive)")
	cmd.Flags().StringVar(&date, "date", "", "filter by the deleted event's date (YYYY-MM-DD)")

	return cmd
}

func runDeletedList(eventID string, minDeleted uint64, date string) error {
	query := &acled.DeletedQuery{}

	if eventID != "" {
		query.EventID = acled.Matches(acled.Text(eventID))
	}

	if minDeleted != 0 {
		query.DeletedTimestamp = acled.GreaterThanOrEqual(acled.Number(minDeleted))
	}

	if date != "" {
		parsed, err := acled.ParseDate(date)
		if err != nil {
			return err
		}

		query.EventDate = acled.Equal(parsed)
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	records, err := client.DeletedEvents(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list deleted records: %w", err)
	}

	return outputDeleted(records)
}

func outputDeleted(records []acled.DeletedEvent) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(records)
	case OutputFormatYAML:
		return outputYAML(records)
	default:
		return outputDeletedTable(records)
	}
}

func outputDeletedTable(records []acled.DeletedEvent) error {
	if len(records) == 0 {
		_, _ = os.Stdout.WriteString("No deleted records found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Event ID", "Deleted At")

	for _, record := range records {
		deletedAt := time.Unix(int64(record.DeletedTimestamp), 0).UTC()
		_ = table.Append(record.EventID, deletedAt.Format("2006-01-02 15:04:05"))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\n%d deleted records\n", len(records))

	return nil
}
