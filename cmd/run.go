package cmd

import (
	"fmt"

	"github.com/anand/fintype/internal/app"
	"github.com/anand/fintype/internal/profile"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	snapRepo := st.SnapshotRepo()

	return app.Run(app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: snapRepo,
		Tracker:      profile.NewTracker(eventRepo, snapRepo),
	})
}
