package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"bike-train-finder/config"
	"bike-train-finder/models"
)

func searchCommand(cfg *config.Config, log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "run a round trip search and print the journeys",
		ArgsUsage: "YYYY-MM-DD",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Value: cfg.DefaultOriginCity, Usage: "origin city"},
			&cli.StringFlag{Name: "to", Value: cfg.DefaultDestinationCity, Usage: "destination city"},
			&cli.IntFlag{Name: "delay", Value: cfg.DefaultReturnDelayHours, Usage: "hours after the start of the day before returning"},
			&cli.BoolFlag{Name: "json", Usage: "print the raw result as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one departure date", 2)
			}

			a, err := setup(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			delay := c.Int("delay")
			result, err := a.search.SearchRoundTrip(c.Context, models.RoundTripSearchInput{
				DepartureDate:    c.Args().First(),
				OriginCity:       c.String("from"),
				DestinationCity:  c.String("to"),
				ReturnDelayHours: &delay,
			})
			if err != nil {
				return err
			}

			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return writeRoundTrip(c.App.Writer, result)
		},
	}
}

// writeRoundTrip prints both legs of a search as aligned tables
func writeRoundTrip(w io.Writer, result *models.RoundTripResult) error {
	fmt.Fprintf(w, "%s → %s on %s\n\n", result.OriginCity, result.DestinationCity, result.SearchDate)

	legs := []struct {
		title    string
		journeys []models.JourneyWithDetails
	}{
		{"Outbound", result.OutboundJourneys},
		{"Return", result.ReturnJourneys},
	}

	for _, leg := range legs {
		fmt.Fprintf(w, "%s (%d)\n", leg.title, len(leg.journeys))
		if len(leg.journeys) == 0 {
			fmt.Fprintln(w, "  no journeys")
			fmt.Fprintln(w)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  TRAIN\tDEPARTS\tARRIVES\tDURATION\tPRICE\tBICYCLE")
		for _, j := range leg.journeys {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				j.TrainNumber,
				j.DepartureTime.UTC().Format("15:04"),
				j.ArrivalTime.UTC().Format("15:04"),
				models.FormatDuration(j.DurationMinutes),
				models.FormatPrice(j.PriceCents),
				bicycleSummary(j))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return nil
}

func bicycleSummary(j models.JourneyWithDetails) string {
	if !j.HasBicycleSpace {
		return "no bike space"
	}
	s := fmt.Sprintf("%d spaces, %s", j.BicycleSpacesAvailable, models.FormatPrice(j.BicyclePriceCents))
	if j.BicycleReservationRequired {
		s += ", reservation required"
	}
	return s
}
