package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"startify/internal/infra"
)

var statusCmd = &cobra.Command{
	Use:   "status <job_id>",
	Short: "Show the status of a generation job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := infra.NewLogger(os.Getenv("APP_ENV"))
		client, err := newJobClient(cmd, logger)
		if err != nil {
			return err
		}
		st, err := client.Status(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("job %s: %s (%d%%)\n", st.JobID, st.Status, st.Progress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
