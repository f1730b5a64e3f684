package cmd

import (
	"fmt"

	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/typetext"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print your assessment history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker := profile.NewTracker(st.EventRepo(), st.SnapshotRepo())
		history, err := tracker.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No assessments yet. Run `fintype` to take the first one.")
			return nil
		}

		for _, rec := range history {
			fmt.Printf("%s  %-4s %-22s blind spot: %s\n",
				rec.TestDate.Format("2006-01-02"),
				rec.Combination,
				typetext.CombinationName(rec.Combination),
				typetext.DimensionName(rec.BlindSpot))
		}

		if len(history) > 1 {
			fmt.Printf("\nStability: %.0f%%  Most common: %s\n",
				profile.Stability(history)*100, profile.MostCommonType(history))
		}
		return nil
	},
}
