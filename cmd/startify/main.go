// Package main is the entry point for the startify CLI, the client-side
// companion to the Job Service. It submits generation jobs, tracks their
// stages, caches the latest result locally, and exports the document package.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/jobservice"
	"startify/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "startify",
	Short: "Generate and export a complete startup launch package",
	Long: `startify turns a one-line startup idea into a launch package: brand
names, slogans, ad copy, investor matches, market insights, and eight
rendered documents. Jobs run on the Job Service; results are cached in a
local session store so exports work offline.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Job Service base URL (default $API_BASE_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().String("session", "", "session store path (default $SESSION_DB_PATH or startify_session.db)")
}

func apiBaseURL(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		return v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func sessionPath(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("session"); v != "" {
		return v
	}
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		return v
	}
	return "startify_session.db"
}

func openSession(cmd *cobra.Command) (*session.SQLiteStore, error) {
	return session.NewSQLiteStore(sessionPath(cmd))
}

func newJobClient(cmd *cobra.Command, logger infra.Logger) (*jobservice.Client, error) {
	return jobservice.NewClient(jobservice.Options{
		BaseURL:    apiBaseURL(cmd),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     &logger,
	})
}

func ideaFromFlags(cmd *cobra.Command, description string) domain.StartupIdea {
	industry, _ := cmd.Flags().GetString("industry")
	target, _ := cmd.Flags().GetString("target")
	founder, _ := cmd.Flags().GetString("founder")
	return domain.StartupIdea{
		Description:    description,
		Industry:       industry,
		TargetMarket:   target,
		FounderPersona: founder,
	}
}

func addIdeaFlags(cmd *cobra.Command) {
	cmd.Flags().String("industry", "Other", "industry vertical, e.g. HealthTech, FinTech, SaaS")
	cmd.Flags().String("target", "B2B SMB", "target market segment")
	cmd.Flags().String("founder", "Solo Technical Founder", "founder persona")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
