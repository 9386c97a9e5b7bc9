package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"startify/internal/derive"
	"startify/internal/domain"
	"startify/internal/export"
	"startify/internal/infra"
	"startify/internal/render"
	"startify/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export \"idea description\"",
	Short: "Export the cached package as rendered documents",
	Long: `Export renders the latest cached generation result into the document
package: business plan, pitch deck, financial model, brand package, and
marketing kit, plus the premium documents when --premium is set. The idea
is needed again because renders derive their numbers from it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := infra.NewLogger(os.Getenv("APP_ENV"))

		store, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		result, err := store.LatestResult(ctx)
		if err != nil {
			return fmt.Errorf("no cached result, run generate first: %w", err)
		}

		idea := ideaFromFlags(cmd, args[0])
		outDir, _ := cmd.Flags().GetString("out")
		premium, _ := cmd.Flags().GetBool("premium")
		return exportPackage(ctx, logger, idea, result, outDir, premium)
	},
}

func init() {
	addIdeaFlags(exportCmd)
	exportCmd.Flags().String("out", "", "export directory (default $DOWNLOAD_DIR or downloads)")
	exportCmd.Flags().Bool("premium", false, "include premium documents")

	rootCmd.AddCommand(exportCmd)
}

func exportPackage(ctx context.Context, logger infra.Logger, idea domain.StartupIdea, result *domain.GenerationResult, outDir string, premium bool) error {
	if outDir == "" {
		outDir = os.Getenv("DOWNLOAD_DIR")
	}
	if outDir == "" {
		outDir = "downloads"
	}
	fileStore, err := storage.NewFileStore(outDir)
	if err != nil {
		return err
	}

	delivered := 0
	controller := export.NewController(export.Options{
		Registry:        render.NewRegistry(),
		Store:           fileStore,
		Logger:          &logger,
		PremiumUnlocked: premium,
		OnEvent: func(ev export.Event) {
			if ev.Err != nil {
				fmt.Printf("  %-16s failed: %v\n", ev.Item.Name, ev.Err)
				return
			}
			delivered++
			fmt.Printf("  %-16s -> %s\n", ev.Item.Name, ev.Key)
		},
	})

	params := render.Params{
		Idea:    idea,
		Metrics: derive.Derive(idea),
		Result:  result,
	}
	fmt.Printf("exporting package to %s\n", fileStore.BasePath())
	if _, err := controller.ExportAll(ctx, params); err != nil {
		return err
	}
	fmt.Printf("%d documents exported\n", delivered)
	return nil
}
