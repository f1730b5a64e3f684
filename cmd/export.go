package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anand/fintype/internal/profile"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump profile and history as JSON to stdout",
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
		history, err := tracker.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		out := struct {
			Profile *profile.Profile        `json:"profile"`
			History []profile.HistoryRecord `json:"history"`
		}{Profile: prof, History: history}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
