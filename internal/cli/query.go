package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solenne-labs/profilechat/internal/config"
)

// QueryCmd returns the query command
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Run a retrieval query against the embedding store",
		Long:  "Embed the given text and print the top-K most similar profile chunks with their scores",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQuery,
	}

	cmd.Flags().IntP("top-k", "k", 0, "Number of results to return (0 uses the configured default)")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
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

	topK, _ := cmd.Flags().GetInt("top-k")
	if topK <= 0 {
		topK = cfg.TopK
	}

	query := strings.Join(args, " ")
	output, err := a.retrieval.Retrieve(ctx, query, topK)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(output.Results) == 0 {
		fmt.Println("no results (is the embedding store populated? run 'reindex' first)")
		return nil
	}

	for i, result := range output.Results {
		fmt.Printf("%d. [%s] score=%.4f\n   %s\n", i+1, result.Section, result.Score, result.Text)
	}
	return nil
}
