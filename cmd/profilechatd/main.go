package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solenne-labs/profilechat/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "profilechatd",
		Short: "Profile chat daemon and CLI",
		Long:  "Profile chat daemon for serving the recruiter chat API and managing the embedding index",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ReindexCmd())
	rootCmd.AddCommand(cli.QueryCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
