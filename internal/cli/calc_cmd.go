package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var start, end string
	var breakMin int
	var rate float64

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute worked hours and labor cost for one shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startMin, err := domain.ParseClock(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endMin, err := domain.ParseClock(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			if err := domain.ValidateBreak(strconv.Itoa(breakMin)); err != nil {
				return fmt.Errorf("--break: %w", err)
			}
			if rate < 0 {
				return fmt.Errorf("--rate must not be negative")
			}

			w := domain.WorkerEntry{
				StartTime:    domain.FormatClock(startMin),
				EndTime:      domain.FormatClock(endMin),
				BreakMinutes: breakMin,
				HourlyRate:   rate,
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalc(w))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", domain.DefaultStartTime, "Shift start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", domain.DefaultEndTime, "Shift end (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", domain.DefaultBreakMinutes, "Break in minutes")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate in yen")

	return cmd
}
