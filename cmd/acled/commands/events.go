package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tensix-io/acled-client/pkg/acled"
)

// eventFilters carries the raw flag values of the events command before
// they are translated into a typed query.
type eventFilters struct {
	country      string
	countryLike  string
	eventID      string
	year         int
	minYear      int
	region       string
	date         string
	afterDate    string
	fromDate     string
	toDate       string
	minTimestamp uint64
}

// NewEventsCommand creates the events command.
func NewEventsCommand() *cobra.Command {
	var filters eventFilters

	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"ev"},
		Short:   "List events",
		Long: `Query the acled endpoint for events, following pagination to
completion. All filter flags are optional and combine with AND.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEventsList(&filters)
		},
	}

	cmd.Flags().StringVar(&filters.country, "country", "", "filter by country name")
	cmd.Flags().StringVar(&filters.countryLike, "country-like", "", "filter by country name pattern ('*' is the wildcard)")
	cmd.Flags().StringVar(&filters.eventID, "event-id", "", "filter by event identifier")
	cmd.Flags().IntVar(&filters.year, "year", 0, "filter by exact year")
	cmd.Flags().IntVar(&filters.minYear, "min-year", 0, "filter by minimum year (inclusive)")
	cmd.Flags().StringVar(&filters.region, "region", "", "filter by region name (e.g. 'Middle Africa')")
	cmd.Flags().StringVar(&filters.date, "date", "", "filter by exact event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.afterDate, "after-date", "", "filter by event date strictly after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.fromDate, "from", "", "start of an inclusive event date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.toDate, "to", "", "end of an inclusive event date range (YYYY-MM-DD)")
	cmd.Flags().Uint64Var(&filters.minTimestamp, "min-timestamp", 0, "filter by minimum upload timestamp (inclusive)")

	return cmd
}

func runEventsList(filters *eventFilters) error {
	query, err := buildEventsQuery(filters)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	events, err := client.Events(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	return outputEvents(events)
}

func buildEventsQuery(filters *eventFilters) (*acled.EventsQuery, error) {
	query := &acled.EventsQuery{}

	if filters.country != "" && filters.countryLike != "" {
		return nil, fmt.Errorf("%w: --country and --country-like", ErrConflictingFilters)
	}

	if filters.country != "" {
		query.Country = acled.Matches(acled.Text(filters.country))
	}

	if filters.countryLike != "" {
		query.Country = acled.Like(acled.Text(filters.countryLike))
	}

	if filters.eventID != "" {
		query.EventID = acled.Matches(acled.Text(filters.eventID))
	}

	if filters.year != 0 && filters.minYear != 0 {
		return nil, fmt.Errorf("%w: --year and --min-year", ErrConflictingFilters)
	}

	if filters.year != 0 {
		query.Year = acled.Equal(acled.Number(filters.year))
	}

	if filters.minYear != 0 {
		query.Year = acled.GreaterThanOrEqual(acled.Number(filters.minYear))
	}

	if filters.region != "" {
		region, err := acled.ParseRegion(filters.region)
		if err != nil {
			return nil, err
		}

		query.Region = acled.Matches(region)
	}

	dateFilter, err := buildDateFilter(filters)
	if err != nil {
		return nil, err
	}

	query.EventDate = dateFilter

	if filters.minTimestamp != 0 {
		query.Timestamp = acled.GreaterThanOrEqual(acled.Number(filters.minTimestamp))
	}

	return query, nil
}

func buildDateFilter(filters *eventFilters) (acled.Filter[acled.Date], error) {
	var unset acled.Filter[acled.Date]

	set := 0
	for _, flag := range []string{filters.date, filters.afterDate, filters.fromDate} {
		if flag != "" {
			set++
		}
	}

	if set > 1 {
		return unset, fmt.Errorf("%w: --date, --after-date, --from/--to", ErrConflictingFilters)
	}

	if (filters.fromDate == "") != (filters.toDate == "") {
		return unset, ErrIncompleteDateRange
	}

	switch {
	case filters.date != "":
		date, err := acled.ParseDate(filters.date)
		if err != nil {
			return unset, err
		}

		return acled.Equal(date), nil
	case filters.afterDate != "":
		date, err := acled.ParseDate(filters.afterDate)
		if err != nil {
			return unset, err
		}

		return acled.GreaterThan(date), nil
	case filters.fromDate != "":
		from, err := acled.ParseDate(filters.fromDate)
		if err != nil {
			return unset, err
		}

		to, err := acled.ParseDate(filters.toDate)
		if err != nil {
			return unset, err
		}

		return acled.Between(from, to), nil
	default:
		return unset, nil
	}
}

func outputEvents(events []acled.Event) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(events)
	case OutputFormatYAML:
		return outputYAML(events)
	default:
		return outputEventsTable(events)
	}
}

func outputEventsTable(events []acled.Event) error {
	if len(events) == 0 {
		_, _ = os.Stdout.WriteString("No events found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Event ID", "Date", "Type", "Sub-type", "Region", "Country", "Admin1")

	for _, event := range events {
		_ = table.Append(
			event.EventID,
			event.EventDate.String(),
			event.EventType,
			event.SubEventType,
			event.Region.String(),
			event.Country,
			event.Admin1,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\n%d events\n", len(events))

	return nil
}
