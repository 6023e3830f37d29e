package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solenne-labs/profilechat/internal/config"
)

// ReindexCmd returns the reindex command
func ReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the embedding store from the profile document",
		Long:  "Load the profile document, chunk it, embed every chunk, and replace the stored embedding set",
		RunE:  runReindex,
	}
}

func runReindex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	count, err := a.indexer.Run(ctx)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	fmt.Printf("reindexed %d chunks\n", count)
	return nil
}
