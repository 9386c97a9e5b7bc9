package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/orchestrator"
)

var generateCmd = &cobra.Command{
	Use:   "generate \"idea description\"",
	Short: "Submit an idea and wait for the generated package",
	Long: `Generate submits the idea to the Job Service, polls until the job
completes, and caches the result in the local session store. Stage progress
is printed as the generation advances.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := infra.NewLogger(os.Getenv("APP_ENV"))

		store, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		client, err := newJobClient(cmd, logger)
		if err != nil {
			return err
		}

		orch, err := orchestrator.New(orchestrator.Options{
			Client: client,
			Cache:  store,
			Logger: &logger,
		})
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			if profile, err := store.Profile(ctx); err == nil {
				email = profile.Email
			}
		}

		idea := ideaFromFlags(cmd, args[0])
		jobID, err := orch.Start(ctx, email, idea)
		if err != nil {
			return err
		}
		fmt.Printf("job %s submitted\n", jobID)

		result, err := awaitWithProgress(ctx, orch)
		if err != nil {
			return err
		}
		printResult(result)

		if doExport, _ := cmd.Flags().GetBool("export"); doExport {
			outDir, _ := cmd.Flags().GetString("out")
			premium, _ := cmd.Flags().GetBool("premium")
			return exportPackage(ctx, logger, idea, result, outDir, premium)
		}
		return nil
	},
}

func init() {
	addIdeaFlags(generateCmd)
	generateCmd.Flags().String("email", "", "email to associate with the job (default: stored profile)")
	generateCmd.Flags().Bool("export", false, "export the document package after completion")
	generateCmd.Flags().String("out", "", "export directory (default $DOWNLOAD_DIR or downloads)")
	generateCmd.Flags().Bool("premium", false, "include premium documents in the export")

	rootCmd.AddCommand(generateCmd)
}

// awaitWithProgress blocks until the job finishes, printing each stage
// transition as the estimator advances.
func awaitWithProgress(ctx context.Context, orch *orchestrator.Orchestrator) (*domain.GenerationResult, error) {
	type outcome struct {
		result *domain.GenerationResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := orch.Await(ctx)
		done <- outcome{result: result, err: err}
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	printed := -1
	for {
		select {
		case out := <-done:
			return out.result, out.err
		case <-ticker.C:
			_, _, stages := orch.Snapshot()
			for i, stage := range stages {
				if stage.Status == domain.StageRunning && i > printed {
					fmt.Printf("  %s: %s\n", stage.Name, stage.Description)
					printed = i
				}
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func printResult(result *domain.GenerationResult) {
	if result == nil {
		return
	}
	fmt.Println("\ngeneration complete")
	if len(result.BrandNames) > 0 {
		fmt.Printf("  brand names: %s\n", strings.Join(result.BrandNames, ", "))
	}
	if len(result.Slogans) > 0 {
		fmt.Printf("  slogan:      %s\n", result.Slogans[0])
	}
	if result.MarketInsights.MarketSize != "" {
		fmt.Printf("  market:      %s, %s growth\n",
			result.MarketInsights.MarketSize, result.MarketInsights.Growth)
	}
	if len(result.Investors) > 0 {
		fmt.Printf("  investors:   %d matches, top: %s (%s)\n",
			len(result.Investors), result.Investors[0].Name, result.Investors[0].Firm)
	}
}
