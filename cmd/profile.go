package cmd

import (
	"fmt"

	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/typetext"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print your money personality profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker := profile.NewTracker(st.EventRepo(), st.SnapshotRepo())
		prof, err := tracker.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if prof == nil {
			fmt.Println("No profile yet. Run `fintype` to take the assessment.")
			return nil
		}

		fmt.Printf("Type:       %s (%s)\n", prof.Combination, typetext.CombinationName(prof.Combination))
		fmt.Printf("Primary:    %s\n", typetext.DimensionName(prof.Primary))
		fmt.Printf("Secondary:  %s\n", typetext.DimensionName(prof.Secondary))
		fmt.Printf("Last taken: %s\n", prof.LastTestDate.Format("Jan 2, 2006"))
		fmt.Printf("Next check: %s\n", prof.NextTestDate.Format("Jan 2, 2006"))
		if prof.ShouldRetakeTest {
			fmt.Println("A retake is due.")
		}
		if prof.HasTypeChanged && prof.TypeChangeDate != nil {
			fmt.Printf("Type changed from %s on %s\n",
				prof.PreviousCombination, prof.TypeChangeDate.Format("Jan 2, 2006"))
		}
		return nil
	},
}
