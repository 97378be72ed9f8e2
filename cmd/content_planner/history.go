package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/history"
	"github.com/mikhail/content-planner/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and update the publish history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published items",
	Long:  "Lists the publish history from a snapshot file or the configured database, most recent first.",
	RunE:  runHistoryList,
}

var historyConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Record a confirmed publication",
	Long:  "Appends a published item to the publish history (file snapshot or database). History is append-only; running this confirms that a planned item actually went out.",
	RunE:  runHistoryConfirm,
}

var (
	historyConfig string
	historyFile   string
	historySince  int

	confirmChannel string
	confirmDate    string
	confirmPillar  string
	confirmFormat  string
	confirmTitle   string
)

func init() {
	historyCmd.PersistentFlags().StringVarP(&historyConfig, "config", "c", "", "Path to config JSON file (required when using the database)")
	historyCmd.PersistentFlags().StringVar(&historyFile, "file", "", "Path to history snapshot JSON (omit to use the configured database)")

	historyListCmd.Flags().IntVar(&historySince, "since", 0, "Only show items published in the last N days (0 shows all)")

	historyConfirmCmd.Flags().StringVar(&confirmChannel, "channel", "", "Channel the item was published on (required)")
	historyConfirmCmd.Flags().StringVar(&confirmDate, "date", "", "Publish date, YYYY-MM-DD (defaults to today)")
	historyConfirmCmd.Flags().StringVar(&confirmPillar, "pillar", types.PillarUnclassified, "Pillar ID of the published item")
	historyConfirmCmd.Flags().StringVar(&confirmFormat, "format", string(types.FormatPost), "Format of the published item")
	historyConfirmCmd.Flags().StringVar(&confirmTitle, "title", "", "Title of the published item (required)")

	if err := historyConfirmCmd.MarkFlagRequired("channel"); err != nil {
		panic(fmt.Sprintf("failed to mark channel flag as required: %v", err))
	}
	if err := historyConfirmCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyConfirmCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	hist, err := loadHistoryBackend(ctx)
	if err != nil {
		return err
	}

	items := hist.Items
	if historySince > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -historySince)
		items = hist.Since(cutoff)
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No published items")
		return nil
	}

	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-12s [%s/%s] %s\n",
			item.Date.Format("2006-01-02"), item.Channel, item.PillarID, item.Format, item.Title)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%d items\n", len(items))
	return nil
}

func runHistoryConfirm(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	date := time.Now().UTC()
	if confirmDate != "" {
		parsed, err := time.Parse("2006-01-02", confirmDate)
		if err != nil {
			return fmt.Errorf("failed to parse date %q: %w", confirmDate, err)
		}
		date = parsed
	}

	format := types.Format(confirmFormat)
	if !types.ValidFormat(format) {
		return fmt.Errorf("unknown format %q", confirmFormat)
	}

	item := types.PublishedItem{
		Channel:  confirmChannel,
		Date:     date,
		PillarID: confirmPillar,
		Format:   format,
		Title:    confirmTitle,
	}

	if historyFile != "" {
		hist, err := history.LoadSnapshot(historyFile)
		if err != nil {
			return err
		}
		hist.Items = append(hist.Items, item)
		if err := history.SaveSnapshot(historyFile, hist); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Recorded %q on %s (%d items total)\n", item.Title, item.Channel, len(hist.Items))
		return nil
	}

	store, err := openConfiguredStore(ctx, historyConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Append(ctx, item); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Recorded %q on %s\n", item.Title, item.Channel)
	return nil
}

// loadHistoryBackend resolves the history source for read commands: the
// snapshot file when given, the configured database otherwise.
func loadHistoryBackend(ctx context.Context) (*types.PublishHistory, error) {
	if historyFile != "" {
		return history.LoadSnapshot(historyFile)
	}

	store, err := openConfiguredStore(ctx, historyConfig)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Snapshot(ctx)
}

func openConfiguredStore(ctx context.Context, configPath string) (*history.Store, error) {
	if configPath == "" {
		return nil, fmt.Errorf("either --file or --config with a database_url is required")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config has no database_url; use --file for snapshot history")
	}

	store, err := history.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return store, nil
}
