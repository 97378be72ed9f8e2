package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikhail/content-planner/internal/history"
)

var importChannelCmd = &cobra.Command{
	Use:   "import-channel",
	Short: "Import published posts from a channel HTML export",
	Long:  "Parses an HTML export of channel posts and appends them to the publish history. Imported items carry an unclassified pillar and a post format until edited.",
	RunE:  runImportChannel,
}

var (
	importConfig  string
	importFile    string
	importExport  string
	importChannel string
)

func init() {
	importChannelCmd.Flags().StringVarP(&importConfig, "config", "c", "", "Path to config JSON file (required when writing to the database)")
	importChannelCmd.Flags().StringVar(&importFile, "file", "", "Path to history snapshot JSON (omit to use the configured database)")
	importChannelCmd.Flags().StringVarP(&importExport, "export", "e", "", "Path to the channel export HTML file (required)")
	importChannelCmd.Flags().StringVar(&importChannel, "channel", "", "Channel name to record the items under (required)")

	if err := importChannelCmd.MarkFlagRequired("export"); err != nil {
		panic(fmt.Sprintf("failed to mark export flag as required: %v", err))
	}
	if err := importChannelCmd.MarkFlagRequired("channel"); err != nil {
		panic(fmt.Sprintf("failed to mark channel flag as required: %v", err))
	}

	rootCmd.AddCommand(importChannelCmd)
}

func runImportChannel(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	f, err := os.Open(importExport)
	if err != nil {
		return fmt.Errorf("failed to open export file %s: %w", importExport, err)
	}
	defer func() { _ = f.Close() }()

	items, err := history.ParseChannelExport(f, importChannel)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No publishable messages found in export")
		return nil
	}

	if importFile != "" {
		hist, err := history.LoadSnapshot(importFile)
		if err != nil {
			return err
		}
		hist.Items = append(hist.Items, items...)
		if err := history.SaveSnapshot(importFile, hist); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Imported %d items into %s (%d items total)\n",
			len(items), importFile, len(hist.Items))
		return nil
	}

	store, err := openConfiguredStore(ctx, importConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, item := range items {
		if err := store.Append(ctx, item); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Imported %d items from %s\n", len(items), importChannel)
	return nil
}
